package inputguard

import (
	"net/http"

	"github.com/dmitrymomot/fittrack/pkg/audit"
	"github.com/dmitrymomot/fittrack/pkg/logger"
	"github.com/dmitrymomot/fittrack/pkg/sanitizer"
)

// PreventPrototypePollution returns middleware that rejects requests with a
// __proto__, constructor or prototype key in any nested mapping of the body,
// query or route parameters. Mappings inside sequences are not inspected.
// A rejection writes ErrPrototypePollution and records an audit event with
// the dotted path of the key.
func PreventPrototypePollution(opts ...Option) func(http.Handler) http.Handler {
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
				m, ok := src.value.(map[string]any)
				if !ok {
					continue
				}
				if path, found := sanitizer.FindReservedKey(m); found {
					o.auditor.Record(r.Context(), newEvent(r, audit.ActionPrototypePollutionBlocked, CodePrototypePollution, src.name, path))
					writeRejection(w, ErrPrototypePollution)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
