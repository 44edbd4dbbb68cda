package inputguard

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/fittrack/pkg/audit"
	"github.com/dmitrymomot/fittrack/pkg/logger"
	"github.com/dmitrymomot/fittrack/pkg/sanitizer"
)

// DefaultMaxBodyBytes limits how much of a request body is read for inspection.
const DefaultMaxBodyBytes = 1 << 20

// Auditor receives security events for rejected requests. Record must not
// block; *audit.Logger satisfies it.
type Auditor interface {
	Record(ctx context.Context, e audit.Event)
}

// Option configures the middlewares.
type Option func(*options)

type options struct {
	log          *slog.Logger
	auditor      Auditor
	maxBodyBytes int64
	maxDepth     int
}

func newOptions(opts []Option) *options {
	o := &options{
		maxBodyBytes: DefaultMaxBodyBytes,
		maxDepth:     sanitizer.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	o.log = o.log.With(logger.Component("inputguard"))
	if o.auditor == nil {
		o.auditor = logAuditor{storage: audit.NewLogStorage(o.log)}
	}
	return o
}

// WithLogger sets the logger for dropped keys and internal failures.
// Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithAuditor sets where rejection events go. Without it they are written to
// the logger as warnings.
func WithAuditor(a Auditor) Option {
	return func(o *options) { o.auditor = a }
}

// WithMaxBodyBytes limits the inspected body size. Larger bodies are rejected
// with ErrInvalidInputData.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

// WithMaxDepth limits the nesting depth the sanitizer accepts.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithConfig applies every non-zero field of cfg.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		WithMaxBodyBytes(cfg.MaxBodyBytes)(o)
		WithMaxDepth(cfg.MaxDepth)(o)
	}
}

type logAuditor struct {
	storage *audit.LogStorage
}

func (a logAuditor) Record(ctx context.Context, e audit.Event) {
	_ = a.storage.StoreBatch(ctx, []audit.Event{e})
}
