package collections

import "github.com/hasbyte1/go-underbar/arr"

// This file holds the Sequence-only operations. They need comparable
// elements or a new element type, which Go methods cannot express, so they
// are package-level functions delegating to package arr:
//
//	tags := collections.Uniq(collections.New("go", "db", "go"), false)

// IndexOf returns the index of the first item equal to target, or -1.
func IndexOf[T comparable](s *Sequence[T], target T) int {
	return arr.IndexOf(s.raw(), target)
}

// Uniq returns s without duplicates, keeping first occurrences. See
// [arr.Uniq] for the isSorted fast path.
func Uniq[T comparable](s *Sequence[T], isSorted bool) *Sequence[T] {
	return &Sequence[T]{items: arr.Uniq(s.raw(), isSorted)}
}

// UniqBy is [Uniq] comparing items by the key fn extracts.
func UniqBy[T any, K comparable](s *Sequence[T], isSorted bool, fn func(T) K) *Sequence[T] {
	return &Sequence[T]{items: arr.UniqBy(s.raw(), isSorted, fn)}
}

// Intersection returns the items of seqs[0] present in every other
// sequence, each once, in seqs[0] order.
func Intersection[T comparable](seqs []*Sequence[T]) *Sequence[T] {
	return &Sequence[T]{items: arr.Intersection(rawSlices(seqs))}
}

// Difference returns the items of s that appear in none of others.
func Difference[T comparable](s *Sequence[T], others []*Sequence[T]) *Sequence[T] {
	return &Sequence[T]{items: arr.Difference(s.raw(), rawSlices(others))}
}

// Zip groups items of seqs by index, padding shorter sequences with the
// zero value of T.
func Zip[T any](seqs []*Sequence[T]) *Sequence[[]T] {
	return &Sequence[[]T]{items: arr.Zip(rawSlices(seqs))}
}

// Flatten flattens a nested Sequence. Nested slices, arrays and Sequences of
// any element type are unwrapped; shallow limits this to one level.
func Flatten(s *Sequence[any], shallow bool) *Sequence[any] {
	return &Sequence[any]{items: arr.Flatten(s.raw(), shallow)}
}

func rawSlices[T any](seqs []*Sequence[T]) [][]T {
	out := make([][]T, len(seqs))
	for i, s := range seqs {
		out[i] = s.raw()
	}
	return out
}
