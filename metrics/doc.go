// Package metrics provides Prometheus instrumentation for the function
// decorators in package funcs.
//
// Instrumentation is opt-in. Build a [Registry] against the Prometheus
// registerer of your choice and hand it to a decorator through
// funcs.Options:
//
//	reg := metrics.NewRegistry(prometheus.DefaultRegisterer)
//	lookup := funcs.Memoize(fetch, funcs.Options{Name: "fetch", Metrics: reg})
//
// A nil *Registry is valid and records nothing, so decorators never need to
// check whether metrics are enabled.
package metrics
