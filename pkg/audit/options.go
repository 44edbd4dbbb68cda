package audit

import (
	"context"
	"log/slog"
	"time"
)

// Option configures a Logger.
type Option func(*Logger)

// WithBufferSize sets how many events may wait for the worker before Record
// falls back to synchronous writes. Non-positive values are ignored.
func WithBufferSize(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.bufferSize = n
		}
	}
}

// WithBatchSize sets the number of events that triggers an immediate flush.
func WithBatchSize(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.batchSize = n
		}
	}
}

// WithFlushInterval bounds how long a partial batch waits before it is written.
func WithFlushInterval(d time.Duration) Option {
	return func(l *Logger) {
		if d > 0 {
			l.flushInterval = d
		}
	}
}

// WithStorageTimeout bounds every storage write.
func WithStorageTimeout(d time.Duration) Option {
	return func(l *Logger) {
		if d > 0 {
			l.storageTimeout = d
		}
	}
}

// WithFallback sets the storage used when the buffer is full, the logger is
// closed or the primary storage fails. Defaults to a LogStorage.
func WithFallback(s Storage) Option {
	return func(l *Logger) {
		if s != nil {
			l.fallback = s
		}
	}
}

// WithLogger sets the logger for the Logger's own failures.
func WithLogger(log *slog.Logger) Option {
	return func(l *Logger) {
		if log != nil {
			l.log = log
		}
	}
}

// WithRequestIDExtractor fills Event.RequestID from the context when the
// caller left it empty. requestid.FromContext fits.
func WithRequestIDExtractor(fn func(context.Context) string) Option {
	return func(l *Logger) { l.requestID = fn }
}
