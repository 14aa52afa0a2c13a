package metrics

import "github.com/prometheus/client_golang/prometheus"

// DefaultNamespace is the metric namespace used when Config.Namespace is empty.
const DefaultNamespace = "underbar"

// Config holds configuration for metrics collection.
type Config struct {
	// Enabled controls whether metrics collection is active.
	Enabled bool

	// Registry is the Prometheus registerer to use. If nil,
	// prometheus.DefaultRegisterer is used.
	Registry prometheus.Registerer

	// Namespace overrides the default "underbar" namespace.
	Namespace string
}

// DefaultConfig returns a default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Registry:  prometheus.DefaultRegisterer,
		Namespace: DefaultNamespace,
	}
}
