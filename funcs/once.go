package funcs

import (
	"sync"

	"github.com/hasbyte1/go-underbar/metrics"
)

// Once returns a wrapper that calls fn on its first invocation only. That
// call's result is stored and returned by every later invocation, whatever
// argument they pass.
//
// The wrapper holds a lock while fn runs, so concurrent first calls wait
// for it and observe its result. A call to the wrapper from inside fn
// deadlocks. If fn panics nothing is stored and the next call runs fn again.
//
// Once panics if opts fail [Options.Validate].
//
//	initDB := funcs.Once(func(dsn string) *sql.DB { ... })
//	db := initDB("postgres://...")
//	db = initDB("ignored") // same *sql.DB, fn not called
func Once[A, R any](fn func(A) R, opts ...Options) func(A) R {
	o := mustResolveOptions(opts)
	var (
		mu     sync.Mutex
		done   bool
		result R
	)
	return func(arg A) R {
		mu.Lock()
		defer mu.Unlock()
		if done {
			o.Metrics.Call(metrics.DecoratorOnce, o.Name, metrics.OutcomeCached)
			return result
		}
		result = fn(arg)
		done = true
		o.Metrics.Call(metrics.DecoratorOnce, o.Name, metrics.OutcomeInvoked)
		return result
	}
}

// OnceValue is [Once] for functions without an argument.
func OnceValue[R any](fn func() R, opts ...Options) func() R {
	wrapped := Once(func(struct{}) R { return fn() }, opts...)
	return func() R { return wrapped(struct{}{}) }
}
