package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decorator label values.
const (
	DecoratorOnce     = "once"
	DecoratorMemoize  = "memoize"
	DecoratorThrottle = "throttle"
	DecoratorDelay    = "delay"
)

// Outcome label values.
const (
	OutcomeInvoked    = "invoked"    // once: wrapped function ran
	OutcomeCached     = "cached"     // once: cached result returned
	OutcomeMiss       = "miss"       // memoize: wrapped function ran
	OutcomeHit        = "hit"        // memoize: cached result returned
	OutcomeExecuted   = "executed"   // throttle: leading execution
	OutcomeSuppressed = "suppressed" // throttle: call deferred or dropped
	OutcomeTrailing   = "trailing"   // throttle: trailing execution
	OutcomeScheduled  = "scheduled"  // delay: call scheduled
	OutcomeFired      = "fired"      // delay: call ran
)

// Registry holds the metric instances shared by all decorators.
type Registry struct {
	DecoratorCalls        *prometheus.CounterVec
	MemoizeEntries        *prometheus.GaugeVec
	ThrottleTrailingDelay *prometheus.HistogramVec
}

// NewRegistry creates a Registry in the default namespace, registering its
// collectors with reg. A nil reg leaves the collectors unregistered.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return newRegistry(reg, DefaultNamespace)
}

// NewRegistryFromConfig creates a Registry from cfg. It returns nil, which
// disables instrumentation, when cfg.Enabled is false.
func NewRegistryFromConfig(cfg Config) *Registry {
	if !cfg.Enabled {
		return nil
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return newRegistry(reg, ns)
}

func newRegistry(reg prometheus.Registerer, namespace string) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		DecoratorCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "decorator",
				Name:      "calls_total",
				Help:      "Total number of calls to decorated functions, by outcome",
			},
			[]string{"decorator", "name", "outcome"},
		),

		MemoizeEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "memoize",
				Name:      "entries",
				Help:      "Number of results held in a memoization cache",
			},
			[]string{"name"},
		),

		ThrottleTrailingDelay: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "throttle",
				Name:      "trailing_delay_seconds",
				Help:      "Time from the first suppressed call of a window to its trailing execution",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"name"},
		),
	}
}

// Call records one call of a decorated function.
func (r *Registry) Call(decorator, name, outcome string) {
	if r == nil {
		return
	}
	r.DecoratorCalls.WithLabelValues(decorator, name, outcome).Inc()
}

// CacheSize records the current size of a memoization cache.
func (r *Registry) CacheSize(name string, n int) {
	if r == nil {
		return
	}
	r.MemoizeEntries.WithLabelValues(name).Set(float64(n))
}

// TrailingDelay records how long a suppressed throttle call waited.
func (r *Registry) TrailingDelay(name string, d time.Duration) {
	if r == nil {
		return
	}
	r.ThrottleTrailingDelay.WithLabelValues(name).Observe(d.Seconds())
}
