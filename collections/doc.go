// Package collections provides generic collection shapes and the helpers that
// work over them.
//
// # Shapes
//
// Two concrete shapes implement [Collection]:
//
//   - [Sequence][T]: ordered and index-addressable; callbacks receive the index.
//   - [Mapping][T]: string-keyed; callbacks receive the key.
//
// Callers pick the shape explicitly. Package-level helpers such as [Reduce],
// [Filter], [Map], [SortBy] and [Every] accept either one and traverse it
// only through [Collection.Each]:
//
//	ages := collections.FromMap(map[string]int{"ann": 31, "bob": 27})
//	total := collections.Reduce(ages, func(sum, age int, _ string) int {
//	    return sum + age
//	}, 0) // → 58
//
// # Sequence-only helpers
//
// Set and structural algorithms ([Uniq], [Intersection], [Difference],
// [Zip], [Flatten]) are defined for sequences and delegate to package arr.
// Operations taking several sequences receive them as a slice:
//
//	common := collections.Intersection([]*collections.Sequence[int]{a, b, c})
//
// # Immutability
//
// Sequence and Mapping copy their input on construction, and every helper
// returns a new value. The exceptions are [Mapping.Set], [Mapping.Extend]
// and [Mapping.Defaults], which modify the receiver and return it.
package collections
