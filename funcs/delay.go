package funcs

import (
	"time"

	"github.com/hasbyte1/go-underbar/metrics"
)

// Delay schedules fn to run once after wait and returns immediately. A
// wait of zero or less runs fn as soon as the scheduler allows, still on a
// separate goroutine and never before Delay returns. Delay panics, without
// scheduling anything, if opts fail [Options.Validate].
func Delay(fn func(), wait time.Duration, opts ...Options) {
	o := mustResolveOptions(opts)
	o.Metrics.Call(metrics.DecoratorDelay, o.Name, metrics.OutcomeScheduled)
	o.Scheduler.AfterFunc(max(wait, 0), func() {
		o.Metrics.Call(metrics.DecoratorDelay, o.Name, metrics.OutcomeFired)
		fn()
	})
}

// DelayArgs is [Delay] for a function taking an argument. arg is captured
// when DelayArgs is called.
//
//	funcs.DelayArgs(notify, time.Second, "build finished")
func DelayArgs[A any](fn func(A), wait time.Duration, arg A, opts ...Options) {
	Delay(func() { fn(arg) }, wait, opts...)
}
