package sanitizer

import (
	"html"
	"strings"
)

// cleanString is the fixed string pipeline. The order matters: markup is
// removed before escaping so escaping cannot re-introduce tags, and script
// tokens are removed last.
var cleanString = Compose(
	StripTags,
	EscapeText,
	RemoveScriptTokens,
	strings.TrimSpace,
)

// CleanString strips markup, entity-escapes the remaining text, deletes script
// and query-operator tokens and trims surrounding whitespace.
//
//	CleanString("<script>alert(1)</script>") // ""
//	CleanString("  Tom & Jerry ")             // "Tom &amp; Jerry"
//	CleanString("javascript:go()")            // "go()"
func CleanString(s string) string {
	return cleanString(s)
}

// StripTags removes every tag and attribute. Text inside script, style and
// similar elements is removed as well.
func StripTags(s string) string {
	if s == "" {
		return s
	}
	return stripAllPolicy.Sanitize(s)
}

// EscapeText escapes HTML special characters. Entities already present in s are
// decoded first, so escaped text is never escaped twice.
func EscapeText(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}

// RemoveScriptTokens deletes $where, $regex, javascript:, function(, eval(,
// setTimeout and setInterval regardless of case. Removal repeats until nothing
// matches so tokens split by another token cannot reassemble.
func RemoveScriptTokens(s string) string {
	for {
		next := scriptTokenRegex.ReplaceAllString(s, "")
		if next == s {
			return s
		}
		s = next
	}
}
