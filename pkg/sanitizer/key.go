package sanitizer

import "strings"

// CleanKey filters a mapping key. It reports false when the key must be dropped:
// it starts with "$", contains a dot, or contains where, function, eval,
// javascript or script in any case. Surviving keys keep only ASCII letters,
// digits and underscores, and dunder names like __proto__ are reduced to their
// bare name.
func CleanKey(key string) (string, bool) {
	if dangerousKeyRegex.MatchString(key) {
		return "", false
	}

	cleaned := nonKeyCharRegex.ReplaceAllString(key, "")
	if strings.HasPrefix(cleaned, "__") && strings.HasSuffix(cleaned, "__") {
		cleaned = strings.Trim(cleaned, "_")
	}

	// Stripping may assemble a forbidden name out of harmless pieces ("wh-ere").
	if cleaned == "" || dangerousKeyRegex.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}

// IsReservedKey reports whether key is __proto__, constructor or prototype,
// ignoring case.
func IsReservedKey(key string) bool {
	_, ok := reservedKeys[strings.ToLower(key)]
	return ok
}
