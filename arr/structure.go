package arr

import (
	"cmp"
	"reflect"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Sequencer is implemented by container types that [Flatten] should descend
// into as if they were slices.
type Sequencer interface {
	// AnyItems returns the container's elements, in order, as a []any.
	AnyItems() []any
}

// Flatten turns a nested sequence into a flat one. Any element that is a
// slice or array (of any element type) or a [Sequencer] is replaced by its
// own elements, recursively. Strings, maps, structs and scalars are kept as
// they are.
//
// With shallow set, only one level is unwrapped: the elements of nested
// sequences are appended without looking inside them.
//
//	Flatten([]any{1, []any{2, []any{3, []int{4}}, 5}}, false) // → [1 2 3 4 5]
//	Flatten([]any{1, []any{2, []any{3}}}, true)              // → [1 2 [3]]
func Flatten(items []any, shallow bool) []any {
	out := make([]any, 0, len(items))
	var walk func(items []any, depth int)
	walk = func(items []any, depth int) {
		for _, item := range items {
			nested, ok := asSequence(item)
			if !ok || (shallow && depth > 0) {
				out = append(out, item)
				continue
			}
			walk(nested, depth+1)
		}
	}
	walk(items, 0)
	return out
}

func asSequence(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil, string:
		return nil, false
	case []any:
		return val, true
	case Sequencer:
		return val.AnyItems(), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements keep their input order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortBy returns a copy of items sorted in ascending order of the key fn
// extracts. Keys are compared with [cmp.Less]: numbers numerically (NaN
// first), strings byte-wise. The sort is stable and fn is called once per
// element.
//
//	SortBy(people, func(p Person) int { return p.Age })
func SortBy[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	return SortByOpt(items, func(item T) (K, bool) { return fn(item), true })
}

// SortByOpt is [SortBy] for keys that may be missing. Elements for which fn
// reports false are placed after every element that has a key, in their
// input order.
func SortByOpt[T any, K cmp.Ordered](items []T, fn func(T) (K, bool)) []T {
	type keyed struct {
		item T
		key  K
		ok   bool
	}
	tmp := make([]keyed, len(items))
	for i, item := range items {
		k, ok := fn(item)
		tmp[i] = keyed{item: item, key: k, ok: ok}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		a, b := tmp[i], tmp[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.ok && cmp.Less(a.key, b.key)
	})
	out := make([]T, len(tmp))
	for i, k := range tmp {
		out[i] = k.item
	}
	return out
}

// SortByKey sorts maps by the value stored under key. Maps without key sort
// last.
//
//	SortByKey([]map[string]int{{"age": 40}, {}, {"age": 21}}, "age")
//	// → [{age:21} {age:40} {}]
func SortByKey[K comparable, V cmp.Ordered](items []map[K]V, key K) []map[K]V {
	return SortByOpt(items, func(m map[K]V) (V, bool) {
		v, ok := m[key]
		return v, ok
	})
}
