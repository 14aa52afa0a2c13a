package arr

import "sort"

// ─────────────────────────────────────────────────────────────────────────────
// Map helpers
//
// These operate on plain string-keyed maps and mirror the object helpers of
// the classic underscore API:
//
//	opts := map[string]any{"retries": 3}
//	Extend(opts, []map[string]any{{"timeout": "5s"}})    // overwrites
//	Defaults(opts, []map[string]any{{"retries": 10}})   // fills gaps only
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every entry of sources into target, in order, so later
// sources overwrite earlier ones and target's own entries. target is
// mutated and returned; a nil target is replaced by a new map.
func Extend[V any](target map[string]V, sources []map[string]V) map[string]V {
	if target == nil {
		target = make(map[string]V)
	}
	for _, src := range sources {
		for k, v := range src {
			target[k] = v
		}
	}
	return target
}

// Defaults copies entries from sources into target only for keys target
// does not hold yet. The first source providing a key wins. target is
// mutated and returned; a nil target is replaced by a new map.
func Defaults[V any](target map[string]V, sources []map[string]V) map[string]V {
	if target == nil {
		target = make(map[string]V)
	}
	for _, src := range sources {
		for k, v := range src {
			if _, ok := target[k]; !ok {
				target[k] = v
			}
		}
	}
	return target
}

// Keys returns the keys of m in ascending order.
func Keys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
