package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-underbar/arr"
)

// Sequence is an ordered, index-addressable collection of T.
//
// A Sequence never exposes its backing slice: constructors copy their input
// and every transformation returns a new Sequence. A nil *Sequence behaves
// as an empty one.
//
//	s := collections.New(3, 1, 2)
//	s := collections.From([]string{"a", "b", "c"})
//	s := collections.Empty[int]()
type Sequence[T any] struct {
	items []T
}

// New creates a Sequence from a variadic list of items (copied).
func New[T any](items ...T) *Sequence[T] {
	return From(items)
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

// All returns a copy of the underlying slice.
func (s *Sequence[T]) All() []T {
	items := s.raw()
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Count returns the number of items.
func (s *Sequence[T]) Count() int { return len(s.raw()) }

// IsEmpty reports whether the sequence contains no items.
func (s *Sequence[T]) IsEmpty() bool { return len(s.raw()) == 0 }

// Get returns the item at index together with a presence flag.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	items := s.raw()
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// Each calls fn(item, index) for every item, in index order.
func (s *Sequence[T]) Each(fn func(T, int)) {
	for i, item := range s.raw() {
		fn(item, i)
	}
}

// AnyItems returns the items boxed as []any. It makes a Sequence nested
// inside another one visible to [Flatten].
func (s *Sequence[T]) AnyItems() []any {
	items := s.raw()
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// First returns the first item, or the zero value and false when empty.
func (s *Sequence[T]) First() (T, bool) { return arr.First(s.raw()) }

// FirstN returns the first n items. n larger than Count returns them all.
func (s *Sequence[T]) FirstN(n int) *Sequence[T] {
	return &Sequence[T]{items: arr.FirstN(s.raw(), n)}
}

// Last returns the last item, or the zero value and false when empty.
func (s *Sequence[T]) Last() (T, bool) { return arr.Last(s.raw()) }

// LastN returns the last n items. n larger than Count returns them all.
func (s *Sequence[T]) LastN(n int) *Sequence[T] {
	return &Sequence[T]{items: arr.LastN(s.raw(), n)}
}

// Shuffle returns a new Sequence holding a random permutation of s.
func (s *Sequence[T]) Shuffle() *Sequence[T] {
	return &Sequence[T]{items: arr.Shuffle(s.raw())}
}

// ToJSON serialises the items to a JSON array.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	items := s.raw()
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.raw())
	}
	return string(b)
}

// raw returns the backing slice. A nil *Sequence reads as empty.
func (s *Sequence[T]) raw() []T {
	if s == nil {
		return nil
	}
	return s.items
}
