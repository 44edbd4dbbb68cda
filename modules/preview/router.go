package preview

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router mounts the preview endpoints. guard wraps every route once chi has
// resolved the route parameters; pass inputguard.Pipeline here.
//
//	r.Mount("/sanitizer", preview.Router(inputguard.Pipeline(opts...)))
func Router(guard func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		if guard != nil {
			r.Use(guard)
		}
		r.Get("/preview/{ref}", Handle)
		r.Post("/preview/{ref}", Handle)
	})

	return r
}
