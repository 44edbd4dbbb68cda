package inputguard

import (
	"net/http"

	"github.com/dmitrymomot/fittrack/pkg/audit"
	"github.com/dmitrymomot/fittrack/pkg/logger"
	"github.com/dmitrymomot/fittrack/pkg/sanitizer"
)

// DetectInjection returns middleware that rejects requests whose body, query
// or route parameters carry query operators or script fragments, checked in
// that order. It inspects the raw input captured by Sanitize when present,
// so blatant attempts are refused instead of silently cleaned. A rejection
// writes ErrInvalidInput and records an audit event.
func DetectInjection(opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in, err := inputFor(r, o)
			if err != nil {
				o.log.WarnContext(r.Context(), "failed to read request input", logger.Error(err))
				writeRejection(w, ErrInvalidInputData)
				return
			}

			for _, src := range in.sources() {
				if path, found := sanitizer.FindInjection(src.value); found {
					o.auditor.Record(r.Context(), newEvent(r, audit.ActionInjectionBlocked, CodeInvalidInput, src.name, path))
					writeRejection(w, ErrInvalidInput)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
