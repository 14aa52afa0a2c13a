package arr

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
//
// Equality is Go's == on the element (or projected key) type, so a float NaN
// never matches anything, including itself. Uncomparable values held in an
// interface are matched by identity; see [Equal].
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a copy of items with duplicates removed, keeping the first
// occurrence of each value.
//
// When isSorted is true the input is assumed to hold duplicates only in
// adjacent runs, and each element is compared with its predecessor alone.
// Non-adjacent duplicates survive in that mode.
func Uniq[T comparable](items []T, isSorted bool) []T {
	return UniqBy(items, isSorted, Identity[T])
}

// UniqBy is [Uniq] comparing elements by the key fn extracts. The element
// kept for each key is the first one that produced it.
//
//	UniqBy(users, false, func(u User) string { return u.Email })
func UniqBy[T any, K comparable](items []T, isSorted bool, fn func(T) K) []T {
	out := make([]T, 0, len(items))
	if isSorted {
		dynamic := mayHoldUncomparable[K]()
		var prev K
		for i, item := range items {
			k := fn(item)
			if i == 0 || !equalDyn(k, prev, dynamic) {
				out = append(out, item)
			}
			prev = k
		}
		return out
	}
	seen := newKeySet[K](len(items))
	for _, item := range items {
		if seen.add(fn(item)) {
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the values of seqs[0] that are present in every
// other sequence, in the order they first appear in seqs[0]. Each value is
// returned once. An empty seqs yields an empty slice.
//
//	Intersection([][]int{{1, 2, 3}, {2, 3, 4}, {2, 3, 5}}) // → [2 3]
func Intersection[T comparable](seqs [][]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}
	sets := make([]*keySet[T], len(seqs)-1)
	for i, seq := range seqs[1:] {
		sets[i] = toSet(seq)
	}
	emitted := newKeySet[T](len(seqs[0]))
	out := make([]T, 0)
	for _, item := range seqs[0] {
		if emitted.has(item) {
			continue
		}
		if inAll(sets, item) {
			emitted.add(item)
			out = append(out, item)
		}
	}
	return out
}

// Difference returns the elements of items that appear in none of others.
// Order and duplicates of items are preserved.
//
//	Difference([]int{1, 2, 3, 4}, [][]int{{2, 4}}) // → [1 3]
func Difference[T comparable](items []T, others [][]T) []T {
	exclude := newKeySet[T](0)
	for _, other := range others {
		for _, item := range other {
			exclude.add(item)
		}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !exclude.has(item) {
			out = append(out, item)
		}
	}
	return out
}

func toSet[T comparable](items []T) *keySet[T] {
	set := newKeySet[T](len(items))
	for _, item := range items {
		set.add(item)
	}
	return set
}

func inAll[T comparable](sets []*keySet[T], item T) bool {
	for _, set := range sets {
		if !set.has(item) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Pair holds two values of possibly different types.
// It is the element type produced by [ZipPairs].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip groups the elements of seqs by index: tuple i holds seqs[j][i] for
// every j. The result is as long as the longest sequence; shorter sequences
// contribute the zero value of T.
//
//	Zip([][]any{{"a", "b", "c"}, {1, 2}}) // → [[a 1] [b 2] [c <nil>]]
func Zip[T any](seqs [][]T) [][]T {
	n := 0
	for _, seq := range seqs {
		n = max(n, len(seq))
	}
	out := make([][]T, n)
	for i := range out {
		tuple := make([]T, len(seqs))
		for j, seq := range seqs {
			if i < len(seq) {
				tuple[j] = seq[i]
			}
		}
		out[i] = tuple
	}
	return out
}

// ZipPairs pairs elements of a and b at the same index. Like [Zip] it runs
// to the longer slice, filling the gaps with zero values.
func ZipPairs[A, B any](a []A, b []B) []Pair[A, B] {
	out := make([]Pair[A, B], max(len(a), len(b)))
	for i := range out {
		if i < len(a) {
			out[i].First = a[i]
		}
		if i < len(b) {
			out[i].Second = b[i]
		}
	}
	return out
}
