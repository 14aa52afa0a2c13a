package arr

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Equality
//
// A comparable type parameter such as any can still hold a value whose
// dynamic type is not comparable, like the []any that Flatten keeps in
// shallow mode. Using such a value as a map key or with == panics, so the
// helpers below fall back to identity for it: slices match when they share
// a backing array and length, maps and funcs when they are the same
// pointer. Structs and arrays holding such values are compared with
// reflect.DeepEqual.
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b are the same value. It agrees with a == b
// whenever == would not panic.
//
//	Equal[any](1, 1)               // true
//	Equal[any](1, "1")             // false
//	s := []int{1}
//	Equal[any](s, s)               // true, same slice
//	Equal[any](s, []int{1})        // false, different slice
func Equal[T comparable](a, b T) bool {
	return equalDyn(a, b, mayHoldUncomparable[T]())
}

func equalDyn[T comparable](a, b T, dynamic bool) bool {
	if dynamic && (!hashable(a) || !hashable(b)) {
		return sameValue(any(a), any(b))
	}
	return a == b
}

// mayHoldUncomparable reports whether values of T can panic under ==.
func mayHoldUncomparable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Struct, reflect.Array:
		return true
	}
	return false
}

func hashable[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().Comparable()
}

func sameValue(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// keySet is a membership set over K that tolerates uncomparable dynamic
// values. Those are kept in a list and matched with sameValue.
type keySet[K comparable] struct {
	dynamic bool
	hashed  map[K]struct{}
	other   []K
}

func newKeySet[K comparable](capacity int) *keySet[K] {
	return &keySet[K]{
		dynamic: mayHoldUncomparable[K](),
		hashed:  make(map[K]struct{}, capacity),
	}
}

func (s *keySet[K]) has(k K) bool {
	if s.dynamic && !hashable(k) {
		for _, o := range s.other {
			if sameValue(any(k), any(o)) {
				return true
			}
		}
		return false
	}
	_, ok := s.hashed[k]
	return ok
}

// add inserts k and reports whether it was absent.
func (s *keySet[K]) add(k K) bool {
	if s.has(k) {
		return false
	}
	if s.dynamic && !hashable(k) {
		s.other = append(s.other, k)
	} else {
		s.hashed[k] = struct{}{}
	}
	return true
}
