package funcs

import "time"

// Scheduler is the time source and deferred-callback facility used by
// [Throttle] and [Delay].
//
// AfterFunc must return immediately and run fn once, on another goroutine,
// no earlier than d from now.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func())
}

// SystemScheduler is the [Scheduler] backed by the time package.
type SystemScheduler struct{}

// Now returns time.Now().
func (SystemScheduler) Now() time.Time { return time.Now() }

// AfterFunc runs fn in its own goroutine after d, via time.AfterFunc.
func (SystemScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
