// Package funcs provides function decorators: wrappers that take a function
// and return a new function with the same shape but different call
// semantics.
//
//   - [Once] runs the wrapped function on the first call only and replays its
//     result afterwards.
//   - [Memoize], [Memoize2] and [MemoizeArgs] cache results per distinct
//     argument list.
//   - [Throttle] runs the wrapped function at most once per time window,
//     with a trailing call carrying the most recent suppressed argument.
//   - [Delay] and [DelayArgs] schedule a single deferred call.
//
// # State
//
// Each returned wrapper owns its state (guard flag, cache, timestamps). The
// state is created by the decorator, changed only by calls to the wrapper,
// and released with it. Wrappers are safe for concurrent use.
//
// # Time
//
// Throttle and Delay read time and schedule callbacks through a [Scheduler].
// [SystemScheduler] uses the time package; tests can supply their own
// through [Options].
//
// # Instrumentation
//
// Pass a *metrics.Registry in [Options] to count calls by outcome. See
// package metrics.
package funcs
