package sanitizer

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Pre-compiled patterns and policies. All of them are read-only after package
// initialization and safe for concurrent use.
var (
	// No elements and no attributes are allowed. Content of script, style and
	// similar elements is dropped together with the tags.
	stripAllPolicy = bluemonday.StrictPolicy()

	// Tokens deleted from string leaves after escaping.
	scriptTokenRegex = regexp.MustCompile(`(?i)\$where|\$regex|javascript:|function\s*\(|eval\s*\(|settimeout|setinterval`)

	// Mapping keys matching this pattern are dropped.
	dangerousKeyRegex = regexp.MustCompile(`(?i)^\$|\.|where|function|eval|javascript|script`)

	// Everything a surviving key may not contain.
	nonKeyCharRegex = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// injectionTokens are matched case-insensitively against string values.
// Stored lowercased.
var injectionTokens = []string{
	"$where",
	"$ne",
	"$in",
	"$nin",
	"$gt",
	"$gte",
	"$lt",
	"$lte",
	"$regex",
	"$exists",
	"$elemmatch",
	"javascript:",
	"function(",
	"eval(",
	"settimeout",
	"setinterval",
	"this.",
	"__proto__",
	"constructor",
	"prototype",
}

// reservedKeys can rewrite shared object behaviour when a downstream consumer
// merges attacker-controlled mappings. Stored lowercased.
var reservedKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}
