package funcs_test

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/hasbyte1/go-underbar/funcs"
)

// manualScheduler is a funcs.Scheduler whose clock only moves on Advance.
// Due callbacks run synchronously inside Advance, in due-time order.
type manualScheduler struct {
	mu    sync.Mutex
	now   time.Time
	tasks []task
	seq   int
}

type task struct {
	at  time.Time
	seq int
	fn  func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *manualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.tasks = append(m.tasks, task{at: m.now.Add(d), seq: m.seq, fn: fn})
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way with the clock set to its due time.
func (m *manualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()
	for {
		m.mu.Lock()
		sort.Slice(m.tasks, func(i, j int) bool {
			if m.tasks[i].at.Equal(m.tasks[j].at) {
				return m.tasks[i].seq < m.tasks[j].seq
			}
			return m.tasks[i].at.Before(m.tasks[j].at)
		})
		if len(m.tasks) == 0 || m.tasks[0].at.After(target) {
			m.now = target
			m.mu.Unlock()
			return
		}
		next := m.tasks[0]
		m.tasks = m.tasks[1:]
		if next.at.After(m.now) {
			m.now = next.at
		}
		m.mu.Unlock()
		next.fn()
	}
}

func (m *manualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func TestManualSchedulerOrder(t *testing.T) {
	s := newManualScheduler()
	var got []int
	s.AfterFunc(20*time.Millisecond, func() { got = append(got, 2) })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, 1) })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, 11) })
	s.Advance(15 * time.Millisecond)
	assertSlice(t, got, []int{1, 11})
	s.Advance(5 * time.Millisecond)
	assertSlice(t, got, []int{1, 11, 2})
}

func TestSystemScheduler(t *testing.T) {
	var s funcs.Scheduler = funcs.SystemScheduler{}
	start := s.Now()
	done := make(chan time.Time, 1)
	s.AfterFunc(5*time.Millisecond, func() { done <- time.Now() })
	select {
	case at := <-done:
		if at.Sub(start) < 5*time.Millisecond {
			t.Fatalf("callback ran after %v; want >= 5ms", at.Sub(start))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never ran")
	}
}

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}
