package sanitizer

import (
	"maps"
	"slices"
)

// FindReservedKey searches m for __proto__, constructor or prototype keys,
// ignoring case, and returns the dotted path of the first one found.
//
// Only mapping values are descended into. Mappings held inside sequences are
// not inspected, and ContainsInjection does not check their keys for reserved
// names either, so {"list":[{"__proto__":{}}]} passes both scans.
func FindReservedKey(m map[string]any) (string, bool) {
	return findReservedKey(m, "")
}

func findReservedKey(m map[string]any, prefix string) (string, bool) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		path := keyPath(prefix, key)
		if IsReservedKey(key) {
			return path, true
		}
		if child, ok := m[key].(map[string]any); ok && child != nil {
			if p, found := findReservedKey(child, path); found {
				return p, true
			}
		}
	}
	return "", false
}
