package inputguard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Pipeline chains Sanitize, DetectInjection and PreventPrototypePollution in
// that order. The first rejection ends the request.
//
// Route parameters are only resolved once chi has matched the route, so mount
// the pipeline in a Group or with With rather than on the router itself:
//
//	r.Group(func(r chi.Router) {
//		r.Use(inputguard.Pipeline(inputguard.WithAuditor(auditLog)))
//		r.Post("/goals/{id}", h)
//	})
func Pipeline(opts ...Option) func(http.Handler) http.Handler {
	stages := chi.Chain(
		Sanitize(opts...),
		DetectInjection(opts...),
		PreventPrototypePollution(opts...),
	)
	return stages.Handler
}
