package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-underbar/collections"
)

func TestFromMapCopies(t *testing.T) {
	src := map[string]int{"a": 1}
	m := collections.FromMap(src)
	src["a"] = 2
	if v, _ := m.Get("a"); v != 1 {
		t.Fatal("FromMap did not copy the map")
	}
}

func TestMappingAccessors(t *testing.T) {
	m := collections.NewMapping[string]().Set("b", "bee").Set("a", "ay")
	if m.Count() != 2 || !m.Has("a") || m.Has("z") {
		t.Fatalf("unexpected mapping state: %v", m)
	}
	if v, ok := m.Get("b"); !ok || v != "bee" {
		t.Fatalf("Get(b) = %v, %v", v, ok)
	}
	assertSlice(t, m.Keys(), []string{"a", "b"})
}

func TestMappingZeroValueSet(t *testing.T) {
	var m collections.Mapping[int]
	m.Set("x", 1)
	if v, ok := m.Get("x"); !ok || v != 1 {
		t.Fatalf("zero Mapping Set/Get = %v, %v", v, ok)
	}
}

func TestMappingEachOrder(t *testing.T) {
	var keys []string
	ages().Each(func(_ int, k string) { keys = append(keys, k) })
	assertSlice(t, keys, []string{"ann", "bob", "cid"})
}

func TestMappingExtend(t *testing.T) {
	m := collections.FromMap(map[string]int{"a": 1, "b": 1})
	got := m.Extend([]*collections.Mapping[int]{
		collections.FromMap(map[string]int{"b": 2, "c": 2}),
		nil,
		collections.FromMap(map[string]int{"c": 3}),
	})
	if got != m {
		t.Fatal("Extend must return its receiver")
	}
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		if got, _ := m.Get(k); got != v {
			t.Fatalf("Extend[%s] = %d; want %d", k, got, v)
		}
	}
}

func TestMappingDefaults(t *testing.T) {
	m := collections.FromMap(map[string]int{"a": 0})
	m.Defaults([]*collections.Mapping[int]{
		collections.FromMap(map[string]int{"a": 5, "b": 5}),
		collections.FromMap(map[string]int{"b": 6, "c": 6}),
	})
	assertSlice(t, collections.Values(m).All(), []int{0, 5, 6})
}
