package sanitizer

import (
	"maps"
	"slices"
	"strings"
)

// ContainsInjection reports whether v carries a query-operator or script
// injection attempt anywhere inside it. Strings match when they contain any
// injection token ignoring case. Mappings match when a key starts with "$" or
// contains a dot, or when any value matches. Sequences match when any element
// matches. v is never modified.
func ContainsInjection(v any) bool {
	_, found := FindInjection(v)
	return found
}

// FindInjection is ContainsInjection that also returns the location of the
// first match: the dotted key path, with [i] for sequence elements. A match on
// a top-level string returns an empty path.
func FindInjection(v any) (string, bool) {
	return findInjection(v, "")
}

func findInjection(v any, path string) (string, bool) {
	switch val := v.(type) {
	case string:
		if hasInjectionToken(val) {
			return path, true
		}

	case []any:
		for i, el := range val {
			if p, ok := findInjection(el, indexPath(path, i)); ok {
				return p, true
			}
		}

	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(val)) {
			if strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
				return keyPath(path, key), true
			}
			if p, ok := findInjection(val[key], keyPath(path, key)); ok {
				return p, true
			}
		}
	}

	return "", false
}

func hasInjectionToken(s string) bool {
	lower := strings.ToLower(s)
	for _, token := range injectionTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
