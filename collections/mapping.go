package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-underbar/arr"
)

// Mapping is a string-keyed collection of T.
//
// Each visits entries in ascending key order. That order is a property of
// this implementation only; code that needs a particular order should sort
// the result itself.
type Mapping[T any] struct {
	items map[string]T
}

// NewMapping creates an empty Mapping.
func NewMapping[T any]() *Mapping[T] {
	return &Mapping[T]{items: make(map[string]T)}
}

// FromMap creates a Mapping from m (the map is copied).
func FromMap[T any](m map[string]T) *Mapping[T] {
	items := make(map[string]T, len(m))
	for k, v := range m {
		items[k] = v
	}
	return &Mapping[T]{items: items}
}

// All returns a copy of the underlying map.
func (m *Mapping[T]) All() map[string]T {
	out := make(map[string]T, len(m.items))
	for k, v := range m.items {
		out[k] = v
	}
	return out
}

// Count returns the number of entries.
func (m *Mapping[T]) Count() int { return len(m.items) }

// Get returns the value stored under key together with a presence flag.
func (m *Mapping[T]) Get(key string) (T, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping[T]) Has(key string) bool {
	_, ok := m.items[key]
	return ok
}

// Set stores value under key and returns m for chaining.
func (m *Mapping[T]) Set(key string, value T) *Mapping[T] {
	if m.items == nil {
		m.items = make(map[string]T)
	}
	m.items[key] = value
	return m
}

// Keys returns the keys in ascending order.
func (m *Mapping[T]) Keys() []string { return arr.Keys(m.items) }

// Each calls fn(value, key) for every entry.
func (m *Mapping[T]) Each(fn func(T, string)) {
	for _, k := range arr.Keys(m.items) {
		fn(m.items[k], k)
	}
}

// Extend copies the entries of sources into m; later sources overwrite
// earlier ones and m's own entries. m is modified and returned. nil sources
// are skipped.
func (m *Mapping[T]) Extend(sources []*Mapping[T]) *Mapping[T] {
	m.items = arr.Extend(m.items, rawMaps(sources))
	return m
}

// Defaults copies entries from sources into m for keys m does not hold yet.
// m is modified and returned.
func (m *Mapping[T]) Defaults(sources []*Mapping[T]) *Mapping[T] {
	m.items = arr.Defaults(m.items, rawMaps(sources))
	return m
}

func rawMaps[T any](sources []*Mapping[T]) []map[string]T {
	out := make([]map[string]T, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			out = append(out, src.items)
		}
	}
	return out
}

// ToJSON serialises the entries to a JSON object.
func (m *Mapping[T]) ToJSON() ([]byte, error) {
	return json.Marshal(m.items)
}

// String returns a JSON representation of the mapping.
func (m *Mapping[T]) String() string {
	b, err := m.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.items)
	}
	return string(b)
}
