// Package arr provides standalone generic helper functions for Go slices and
// string-keyed maps, modelled on the classic underscore.js collection API.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values, no wrapper
// type required. Inputs are never modified; every helper returns a new slice:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	uniq  := arr.Uniq([]int{1, 2, 1, 3}, false)             // → [1 2 3]
//	both  := arr.Intersection([][]int{{1, 2, 3}, {2, 3, 4}}) // → [2 3]
//	flat  := arr.Flatten([]any{1, []any{2, []int{3}}}, false) // → [1 2 3]
//
// # Reduction
//
// [Reduce] folds with an explicit seed. [ReduceFirst] uses the first element
// as the seed and never passes it to the callback; on an empty slice it
// reports false instead of failing.
//
// # Equality
//
// Helpers that compare elements require comparable types and use Go's ==,
// with no coercion between types: 1, int64(1) and "1" are all different
// values when stored in a []any. A []any may also hold values that == cannot
// compare, such as nested slices; those match only themselves (see [Equal]),
// so Uniq and friends accept the output of a shallow [Flatten].
//
// # Map helpers
//
// [Extend] and [Defaults] merge string-keyed maps into a target that they
// mutate and return.
package arr
