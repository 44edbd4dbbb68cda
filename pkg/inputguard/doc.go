// Package inputguard is the request sanitization pipeline placed in front of
// every API handler. It inspects the three user-controlled inputs of a
// request (body, query string and route parameters) in three stages:
//
//   - Sanitize rewrites them in place: markup and script tokens are removed
//     from strings and keys that look like query operators are dropped.
//   - DetectInjection rejects requests carrying query operators ($where, $ne,
//     ...) or script fragments with 400 {"code":"INVALID_INPUT"}.
//   - PreventPrototypePollution rejects __proto__, constructor and prototype
//     keys with 400 {"code":"PROTOTYPE_POLLUTION_ATTEMPT"}.
//
// Pipeline chains them in that order. The detection stages look at the raw
// input captured by Sanitize, so an attempt that the sanitizer would have
// neutralized is still refused and audited. Each stage also works alone.
//
// Bodies are decoded for JSON and urlencoded form content types. Query strings
// and form bodies use bracket notation, so filter[$gt]=1 is seen as a nested
// mapping.
//
// Rejected requests are reported to an Auditor such as *audit.Logger:
//
//	r.Group(func(r chi.Router) {
//		r.Use(inputguard.Pipeline(
//			inputguard.WithLogger(log),
//			inputguard.WithAuditor(auditLog),
//			inputguard.WithConfig(cfg.InputGuard),
//		))
//		r.Post("/goals", createGoal)
//	})
package inputguard
