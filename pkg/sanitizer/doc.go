// Package sanitizer cleans and inspects untrusted JSON-shaped values before
// they reach application code.
//
// The package works on the dynamic values produced by encoding/json:
// map[string]any, []any, string, json.Number, float64, bool and nil. It
// provides three independent operations:
//
//   - Sanitize returns a deep copy with every string leaf cleaned and every
//     mapping key filtered. Keys starting with "$", containing a dot, or
//     containing where, function, eval, javascript or script are dropped.
//     Surviving keys keep only ASCII letters, digits and underscores.
//
//   - ContainsInjection and FindInjection scan read-only for query operators
//     ($where, $ne, $gt, …), script fragments (javascript:, eval(, …) and
//     prototype names inside string values, plus "$" and dotted keys.
//
//   - FindReservedKey scans mapping keys for __proto__,
//     constructor and prototype.
//
// The operations overlap on purpose and none of them relies on another. In
// particular Sanitize keeps constructor and prototype keys untouched, and
// FindReservedKey does not descend into sequences.
//
// # String cleaning
//
// CleanString applies, in order: tag stripping with a zero-tag HTML policy,
// entity escaping, removal of script tokens, and whitespace trimming:
//
//	sanitizer.CleanString(`<img src=x onerror=alert(1)>`) // ""
//	sanitizer.CleanString("  Hello World  ")              // "Hello World"
//
// The individual steps are exported and can be combined with Compose:
//
//	plain := sanitizer.Compose(sanitizer.StripTags, strings.TrimSpace)
//
// # Usage
//
//	var payload any
//	dec := json.NewDecoder(r.Body)
//	dec.UseNumber()
//	if err := dec.Decode(&payload); err != nil {
//		return err
//	}
//
//	if sanitizer.ContainsInjection(payload) {
//		return errRejected
//	}
//
//	clean, err := sanitizer.Sanitize(payload,
//		sanitizer.WithDroppedKeyHook(func(path, key string) {
//			log.Warn("dropped key", "path", path, "key", key)
//		}),
//	)
//
// # Error handling
//
// Sanitize returns ErrMaxDepthExceeded for values nested deeper than the
// configured limit and ErrSanitizeFailed if traversal panics. The scanners never
// fail.
//
// All patterns are compiled once at package initialization; every function is
// safe for concurrent use.
package sanitizer
