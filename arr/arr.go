package arr

import (
	"math/rand"
	"reflect"
)

// Identity returns its argument unchanged. It is the default projection used
// wherever a helper needs a key function and the caller has none.
func Identity[T any](v T) T { return v }

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements. When n exceeds len(items)
// the whole slice is copied; a negative n yields an empty slice.
func FirstN[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements. When n exceeds len(items) the
// whole slice is copied.
func LastN[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

// IndexOf returns the index of the first element equal to value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	dynamic := mayHoldUncomparable[T]()
	for i, item := range items {
		if equalDyn(item, value, dynamic) {
			return i
		}
	}
	return -1
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return Reduce(items, func(found bool, item T, _ int) bool {
		return found || fn(item)
	}, false)
}

// ContainsValue reports whether items holds an element equal to value.
func ContainsValue[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// Every reports whether fn holds for every element. A nil fn tests each
// element for being non-zero. Every is true for an empty slice.
func Every[T any](items []T, fn func(T) bool) bool {
	if fn == nil {
		fn = Truthy[T]
	}
	return Reduce(items, func(ok bool, item T, _ int) bool {
		return ok && fn(item)
	}, true)
}

// Some reports whether fn holds for at least one element. A nil fn tests
// each element for being non-zero.
func Some[T any](items []T, fn func(T) bool) bool {
	if fn == nil {
		fn = Truthy[T]
	}
	return !Every(items, func(item T) bool { return !fn(item) })
}

// Truthy reports whether v is not its type's zero value. An interface is
// judged by the value it holds, so any(0) is not truthy. It is the test
// [Every] and [Some] apply when given a nil fn.
func Truthy[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	return !rv.IsZero()
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return Map(items, func(item T, _ int) U { return fn(item) })
}

// PluckKey returns m[key] for every map in items. Maps lacking key
// contribute the zero value of V.
func PluckKey[K comparable, V any](items []map[K]V, key K) []V {
	return Pluck(items, func(m map[K]V) V { return m[key] })
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds items from left to right, starting from initial:
//
//	Reduce([]int{a, b, c}, fn, s) == fn(fn(fn(s, a, 0), b, 1), c, 2)
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// ReduceFirst folds items using the first element as the initial
// accumulator. The first element is never passed to fn; folding starts at
// index 1. An empty slice yields the zero value and false.
//
//	ReduceFirst([]int{5}, fn) // → 5, true; fn is not called
func ReduceFirst[T any](items []T, fn func(T, T, int) T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	result := items[0]
	for i := 1; i < len(items); i++ {
		result = fn(result, items[i], i)
	}
	return result, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation & invocation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items. The input is left as is.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Invoke calls fn(item, args...) for every element and collects the results.
func Invoke[T, R any](items []T, fn func(T, ...any) R, args []any) []R {
	return Map(items, func(item T, _ int) R { return fn(item, args...) })
}

// InvokeMethod calls the method called name on every element, passing args,
// and collects each call's first return value (nil for methods that return
// nothing).
//
// The lookup is done with reflection. A missing method or mismatched
// arguments panic, the same as calling the method directly would fail.
func InvokeMethod[T any](items []T, name string, args []any) []any {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	return Map(items, func(item T, _ int) any {
		m := reflect.ValueOf(item).MethodByName(name)
		if !m.IsValid() {
			panic("arr: " + reflect.TypeOf(item).String() + " has no method " + name)
		}
		out := m.Call(in)
		if len(out) == 0 {
			return nil
		}
		return out[0].Interface()
	})
}
