package funcs

import (
	"sync"
	"time"

	"github.com/hasbyte1/go-underbar/metrics"
)

// Throttle returns a wrapper that runs fn at most once per wait window.
//
// A call arriving when no execution happened within the last wait runs fn
// immediately (leading edge). A call arriving inside the window is
// suppressed: its argument is remembered and a single trailing execution is
// scheduled for the end of the window. Further suppressed calls replace the
// remembered argument, so the trailing execution sees the most recent one.
// The trailing execution starts a new window.
//
// Calls 0ms, 2ms, 4ms, 6ms and 8ms into a 100ms window therefore produce two
// executions: one immediately with the first argument and one at 100ms with
// the fifth.
//
// The wrapper's return value is unavailable because fn may run later; fn
// has no result. Throttle panics if wait is negative; use [NewThrottle] to
// get an error instead.
func Throttle[A any](fn func(A), wait time.Duration, opts ...Options) func(A) {
	wrapped, err := NewThrottle(fn, wait, opts...)
	if err != nil {
		panic(err)
	}
	return wrapped
}

// NewThrottle is [Throttle] returning an error wrapping [ErrInvalidOption]
// for a negative wait or invalid options, and [ErrNilFunc] for a nil fn.
func NewThrottle[A any](fn func(A), wait time.Duration, opts ...Options) (func(A), error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	o := resolveOptions(opts)
	if err := validateStruct(throttleConfig{Wait: wait, Options: o}); err != nil {
		return nil, err
	}
	t := &throttler[A]{fn: fn, wait: wait, opts: o}
	return t.call, nil
}

type throttleConfig struct {
	Wait    time.Duration `validate:"gte=0"`
	Options Options
}

type throttler[A any] struct {
	fn   func(A)
	wait time.Duration
	opts Options

	mu           sync.Mutex
	executed     bool
	lastExec     time.Time
	scheduled    bool
	pendingArg   A
	suppressedAt time.Time
}

func (t *throttler[A]) call(arg A) {
	t.mu.Lock()
	now := t.opts.Scheduler.Now()
	if !t.scheduled && (!t.executed || now.Sub(t.lastExec) >= t.wait) {
		t.executed = true
		t.lastExec = now
		t.mu.Unlock()

		t.opts.Metrics.Call(metrics.DecoratorThrottle, t.opts.Name, metrics.OutcomeExecuted)
		t.fn(arg)
		return
	}

	t.pendingArg = arg
	if !t.scheduled {
		t.scheduled = true
		t.suppressedAt = now
		t.opts.Scheduler.AfterFunc(t.lastExec.Add(t.wait).Sub(now), t.trail)
	}
	t.mu.Unlock()

	t.opts.Metrics.Call(metrics.DecoratorThrottle, t.opts.Name, metrics.OutcomeSuppressed)
}

func (t *throttler[A]) trail() {
	t.mu.Lock()
	arg := t.pendingArg
	var zero A
	t.pendingArg = zero
	t.scheduled = false
	now := t.opts.Scheduler.Now()
	t.lastExec = now
	waited := now.Sub(t.suppressedAt)
	t.mu.Unlock()

	t.opts.Metrics.Call(metrics.DecoratorThrottle, t.opts.Name, metrics.OutcomeTrailing)
	t.opts.Metrics.TrailingDelay(t.opts.Name, waited)
	t.fn(arg)
}
