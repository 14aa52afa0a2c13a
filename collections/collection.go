package collections

import (
	"cmp"

	"github.com/hasbyte1/go-underbar/arr"
)

// Collection is the traversal surface shared by [Sequence] and [Mapping].
//
// K is the key type handed to callbacks: the element index for a *Sequence
// and the entry key for a *Mapping. Every package-level helper in this file
// accepts a Collection and reaches the elements through Each alone, so the
// two shapes are handled by a single implementation of each operation.
type Collection[K comparable, T any] interface {
	// Each calls fn(item, key) for every element.
	Each(fn func(T, K))

	// Count returns the number of elements.
	Count() int
}

var (
	_ Collection[int, any]    = (*Sequence[any])(nil)
	_ Collection[string, any] = (*Mapping[any])(nil)
)

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, key, c) for every element of c.
func Each[K comparable, T any](c Collection[K, T], fn func(T, K, Collection[K, T])) {
	c.Each(func(item T, key K) { fn(item, key, c) })
}

// Values collects the elements of c, in traversal order, into a Sequence.
func Values[K comparable, T any](c Collection[K, T]) *Sequence[T] {
	out := make([]T, 0, c.Count())
	c.Each(func(item T, _ K) { out = append(out, item) })
	return &Sequence[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds c in traversal order, starting from initial.
//
//	total := collections.Reduce(prices, func(sum float64, p float64, _ string) float64 {
//	    return sum + p
//	}, 0)
func Reduce[K comparable, T, U any](c Collection[K, T], fn func(U, T, K) U, initial U) U {
	acc := initial
	c.Each(func(item T, key K) { acc = fn(acc, item, key) })
	return acc
}

// ReduceFirst folds c using its first element as the accumulator. That
// element is never passed to fn. An empty collection yields the zero value
// and false.
func ReduceFirst[K comparable, T any](c Collection[K, T], fn func(T, T, K) T) (T, bool) {
	var acc T
	started := false
	c.Each(func(item T, key K) {
		if !started {
			acc, started = item, true
			return
		}
		acc = fn(acc, item, key)
	})
	return acc, started
}

// Contains reports whether some element of c equals target.
func Contains[K, T comparable](c Collection[K, T], target T) bool {
	return Reduce(c, func(found bool, item T, _ K) bool {
		return found || arr.Equal(item, target)
	}, false)
}

// Every reports whether fn holds for every element of c. It is true for an
// empty collection. A nil fn tests each element with [arr.Truthy].
func Every[K comparable, T any](c Collection[K, T], fn func(T) bool) bool {
	if fn == nil {
		fn = arr.Truthy[T]
	}
	return Reduce(c, func(ok bool, item T, _ K) bool {
		return ok && fn(item)
	}, true)
}

// Some reports whether fn holds for at least one element of c. A nil fn
// tests each element with [arr.Truthy].
func Some[K comparable, T any](c Collection[K, T], fn func(T) bool) bool {
	if fn == nil {
		fn = arr.Truthy[T]
	}
	return !Every(c, func(item T) bool { return !fn(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements of c for which fn(item, key) is true.
func Filter[K comparable, T any](c Collection[K, T], fn func(T, K) bool) *Sequence[T] {
	out := make([]T, 0, c.Count())
	c.Each(func(item T, key K) {
		if fn(item, key) {
			out = append(out, item)
		}
	})
	return &Sequence[T]{items: out}
}

// Reject is the complement of [Filter].
func Reject[K comparable, T any](c Collection[K, T], fn func(T, K) bool) *Sequence[T] {
	return Filter(c, func(item T, key K) bool { return !fn(item, key) })
}

// Map returns fn(item, key) for every element of c, in traversal order.
//
//	lengths := collections.Map(words, func(w string, _ int) int { return len(w) })
func Map[K comparable, T, U any](c Collection[K, T], fn func(T, K) U) *Sequence[U] {
	out := make([]U, 0, c.Count())
	c.Each(func(item T, key K) { out = append(out, fn(item, key)) })
	return &Sequence[U]{items: out}
}

// Pluck extracts a value from every element of c.
func Pluck[K comparable, T, U any](c Collection[K, T], fn func(T) U) *Sequence[U] {
	return Map(c, func(item T, _ K) U { return fn(item) })
}

// PluckKey returns item[key] for every map element of c.
func PluckKey[K comparable, MK comparable, V any](c Collection[K, map[MK]V], key MK) *Sequence[V] {
	return Pluck(c, func(m map[MK]V) V { return m[key] })
}

// SortBy returns the elements of c ordered by the key fn extracts. The
// sort is stable with respect to traversal order.
func SortBy[K comparable, T any, O cmp.Ordered](c Collection[K, T], fn func(T) O) *Sequence[T] {
	return &Sequence[T]{items: arr.SortBy(Values(c).items, fn)}
}

// SortByOpt is [SortBy] for keys that may be missing; elements for which
// fn reports false come last.
func SortByOpt[K comparable, T any, O cmp.Ordered](c Collection[K, T], fn func(T) (O, bool)) *Sequence[T] {
	return &Sequence[T]{items: arr.SortByOpt(Values(c).items, fn)}
}

// Invoke calls fn(item, args...) on every element of c.
func Invoke[K comparable, T, R any](c Collection[K, T], fn func(T, ...any) R, args []any) *Sequence[R] {
	return &Sequence[R]{items: arr.Invoke(Values(c).items, fn, args)}
}

// InvokeMethod calls the named method on every element of c. See
// [arr.InvokeMethod] for the failure behaviour.
func InvokeMethod[K comparable, T any](c Collection[K, T], name string, args []any) *Sequence[any] {
	return &Sequence[any]{items: arr.InvokeMethod(Values(c).items, name, args)}
}
