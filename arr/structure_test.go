package arr_test

import (
	"reflect"
	"testing"

	"github.com/hasbyte1/go-underbar/arr"
)

// ─── Flatten ──────────────────────────────────────────────────────────────────

type bag []any

func (b bag) AnyItems() []any { return b }

type box struct{ items []int }

func (b *box) AnyItems() []any {
	out := make([]any, len(b.items))
	for i, v := range b.items {
		out[i] = v
	}
	return out
}

func TestFlatten(t *testing.T) {
	got := arr.Flatten([]any{1, []any{2, []any{3, []any{4}}, 5}}, false)
	assertSlice(t, got, []any{1, 2, 3, 4, 5})
}

func TestFlattenShallow(t *testing.T) {
	got := arr.Flatten([]any{1, []any{2, []any{3}}}, true)
	want := []any{1, 2, []any{3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten shallow = %v; want %v", got, want)
	}
}

func TestFlattenTypedSlices(t *testing.T) {
	got := arr.Flatten([]any{[]int{1, 2}, [2]string{"a", "b"}, []any{[]float64{1.5}}}, false)
	assertSlice(t, got, []any{1, 2, "a", "b", 1.5})
}

func TestFlattenLeavesNonSequences(t *testing.T) {
	m := map[string]int{"a": 1}
	got := arr.Flatten([]any{"str", m, nil, struct{ X int }{1}, 7}, false)
	if len(got) != 5 || got[0] != "str" || got[2] != nil || got[4] != 7 {
		t.Fatalf("Flatten = %v", got)
	}
	if _, ok := got[1].(map[string]int); !ok {
		t.Fatalf("Flatten unwrapped a map: %v", got[1])
	}
}

func TestFlattenSequencer(t *testing.T) {
	got := arr.Flatten([]any{bag{1, bag{2}}, &box{items: []int{3, 4}}}, false)
	assertSlice(t, got, []any{1, 2, 3, 4})
}

func TestFlattenDeep(t *testing.T) {
	var nested any = []any{42}
	for i := 0; i < 10_000; i++ {
		nested = []any{nested}
	}
	got := arr.Flatten([]any{nested}, false)
	assertSlice(t, got, []any{42})
}

func TestFlattenEmpty(t *testing.T) {
	got := arr.Flatten([]any{[]any{}, []int{}, []any{[]any{}}}, false)
	if len(got) != 0 {
		t.Fatalf("Flatten empties = %v; want []", got)
	}
}

// ─── Sorting ──────────────────────────────────────────────────────────────────

func TestSort(t *testing.T) {
	got := arr.Sort([]int{3, 1, 4, 1, 5}, func(a, b int) bool { return a < b })
	assertSlice(t, got, []int{1, 1, 3, 4, 5})
}

type rec struct {
	K  int
	ID int
}

func TestSortByStable(t *testing.T) {
	in := []rec{{K: 1, ID: 0}, {K: 1, ID: 1}}
	got := arr.SortBy(in, func(r rec) int { return r.K })
	assertSlice(t, got, in)

	in = []rec{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {0, 4}}
	got = arr.SortBy(in, func(r rec) int { return r.K })
	assertSlice(t, got, []rec{{0, 4}, {1, 1}, {1, 3}, {2, 0}, {2, 2}})
}

func TestSortByStrings(t *testing.T) {
	got := arr.SortBy([]string{"pear", "fig", "apple"}, arr.Identity[string])
	assertSlice(t, got, []string{"apple", "fig", "pear"})

	got = arr.SortBy([]string{"pear", "fig", "apple"}, func(s string) int { return len(s) })
	assertSlice(t, got, []string{"fig", "pear", "apple"})
}

func TestSortByDoesNotMutate(t *testing.T) {
	in := []int{3, 2, 1}
	arr.SortBy(in, arr.Identity[int])
	assertSlice(t, in, []int{3, 2, 1})
}

func TestSortByCallsKeyOncePerElement(t *testing.T) {
	calls := 0
	arr.SortBy([]int{5, 4, 3, 2, 1}, func(n int) int { calls++; return n })
	if calls != 5 {
		t.Fatalf("key fn called %d times; want 5", calls)
	}
}

func TestSortByOptMissingLast(t *testing.T) {
	type P struct {
		Name string
		Age  *int
	}
	age := func(n int) *int { return &n }
	in := []P{{"x", nil}, {"a", age(30)}, {"y", nil}, {"b", age(20)}}
	got := arr.SortByOpt(in, func(p P) (int, bool) {
		if p.Age == nil {
			return 0, false
		}
		return *p.Age, true
	})
	names := arr.Pluck(got, func(p P) string { return p.Name })
	assertSlice(t, names, []string{"b", "a", "x", "y"})
}

func TestSortByKey(t *testing.T) {
	in := []map[string]int{{"age": 40, "id": 0}, {"id": 1}, {"age": 21, "id": 2}, {"age": 40, "id": 3}}
	got := arr.SortByKey(in, "age")
	assertSlice(t, arr.PluckKey(got, "id"), []int{2, 0, 3, 1})
}
