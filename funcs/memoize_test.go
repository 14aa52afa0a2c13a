package funcs_test

import (
	"sync"
	"testing"

	"github.com/hasbyte1/go-underbar/funcs"
)

func TestMemoize(t *testing.T) {
	calls := 0
	double := funcs.Memoize(func(n int) int { calls++; return n * 2 })

	if double(2) != 4 || double(2) != 4 || double(3) != 6 {
		t.Fatal("wrong results")
	}
	if calls != 2 {
		t.Fatalf("fn called %d times; want 2", calls)
	}
}

func TestMemoizeRecursive(t *testing.T) {
	calls := 0
	var fib func(int) int
	fib = funcs.Memoize(func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})
	if got := fib(50); got != 12586269025 {
		t.Fatalf("fib(50) = %d", got)
	}
	if calls != 51 {
		t.Fatalf("fn called %d times; want 51", calls)
	}
}

func TestMemoize2(t *testing.T) {
	calls := 0
	add := funcs.Memoize2(func(a, b int) int { calls++; return a + b })

	add(1, 2)
	add(1, 2)
	add(3, 4)
	if calls != 2 {
		t.Fatalf("fn called %d times; want 2", calls)
	}
	if add(2, 1) != 3 || calls != 3 {
		t.Fatalf("(2,1) must be a separate key; calls = %d", calls)
	}
}

func TestMemoizeArgs(t *testing.T) {
	calls := 0
	join := funcs.MemoizeArgs(func(args ...any) int { calls++; return len(args) })

	join(1, 2)
	join(1, 2)
	join(3, 4)
	if calls != 2 {
		t.Fatalf("fn called %d times; want 2", calls)
	}
}

func TestMemoizeArgsKeying(t *testing.T) {
	calls := 0
	fn := funcs.MemoizeArgs(func(args ...any) int { calls++; return calls })

	tests := []struct {
		name string
		args []any
		want int
	}{
		{"first", []any{1, 2}, 1},
		{"type differs", []any{1, "2"}, 2},
		{"width differs", []any{1, int64(2)}, 3},
		{"no args", nil, 4},
		{"boundary shift", []any{"ab", "c"}, 5},
		{"boundary shift 2", []any{"a", "bc"}, 6},
		{"repeat first", []any{1, 2}, 1},
		{"structs by value", []any{struct{ X int }{1}}, 7},
		{"equal struct", []any{struct{ X int }{1}}, 7},
		{"slices by content", []any{[]int{1, 2}}, 8},
		{"equal slice", []any{[]int{1, 2}}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fn(tt.args...); got != tt.want {
				t.Fatalf("fn(%v) = %d; want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestMemoizeConcurrentSameKey(t *testing.T) {
	var mu sync.Mutex
	next := 0
	fn := funcs.Memoize(func(string) int {
		mu.Lock()
		defer mu.Unlock()
		next++
		return next
	})

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = fn("k")
		}()
	}
	wg.Wait()

	want := fn("k")
	for _, r := range results {
		if r != want {
			t.Fatalf("callers saw different results: %v (stored %d)", results, want)
		}
	}
}
