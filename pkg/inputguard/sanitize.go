package inputguard

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fittrack/pkg/logger"
	"github.com/dmitrymomot/fittrack/pkg/sanitizer"
)

// Sanitize returns middleware that rewrites body, query and route parameter
// values in place with their sanitized equivalents:
//
//   - string values are stripped of markup and script tokens;
//   - mapping keys that look like query operators or script names are
//     dropped, with a warning naming the key;
//   - route parameter names come from the route pattern and are kept,
//     only their values are cleaned.
//
// The raw input is kept in the request context for the detection stages.
// Bodies that cannot be decoded or sanitized are rejected with
// ErrInvalidInputData.
func Sanitize(opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, err := readInput(r, o.maxBodyBytes)
			if err != nil {
				o.log.WarnContext(ctx, "failed to read request input", logger.Error(err))
				writeRejection(w, ErrInvalidInputData)
				return
			}

			clean, err := sanitizeInput(ctx, o, raw)
			if err != nil {
				o.log.ErrorContext(ctx, "failed to sanitize request input", logger.Error(err))
				writeRejection(w, ErrInvalidInputData)
				return
			}

			r = r.Clone(withInput(ctx, raw))
			if err := writeInput(r, clean); err != nil {
				o.log.ErrorContext(ctx, "failed to write sanitized input", logger.Error(err))
				writeRejection(w, ErrInvalidInputData)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func sanitizeInput(ctx context.Context, o *options, raw Input) (Input, error) {
	clean := Input{kind: raw.kind}

	if raw.Body != nil {
		body, err := sanitizer.Sanitize(raw.Body, sanitizerOptions(ctx, o, SourceBody)...)
		if err != nil {
			return Input{}, fmt.Errorf("%s: %w", SourceBody, err)
		}
		clean.Body = body
	}

	if raw.Query != nil {
		query, err := sanitizer.Sanitize(raw.Query, sanitizerOptions(ctx, o, SourceQuery)...)
		if err != nil {
			return Input{}, fmt.Errorf("%s: %w", SourceQuery, err)
		}
		clean.Query, _ = query.(map[string]any)
	}

	if raw.Params != nil {
		clean.Params = make(map[string]any, len(raw.Params))
		for key, v := range raw.Params {
			s, _ := v.(string)
			clean.Params[key] = sanitizer.CleanString(s)
		}
	}

	return clean, nil
}

func sanitizerOptions(ctx context.Context, o *options, source string) []sanitizer.Option {
	return []sanitizer.Option{
		sanitizer.WithMaxDepth(o.maxDepth),
		sanitizer.WithDroppedKeyHook(func(path, key string) {
			o.log.LogAttrs(ctx, slog.LevelWarn, "dropped dangerous key",
				logger.Source(source),
				logger.KeyPath(path),
				logger.Key(key),
			)
		}),
	}
}
