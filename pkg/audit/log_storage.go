package audit

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/fittrack/pkg/logger"
)

// LogStorage writes audit events as warning records on a slog logger.
// It never fails, which makes it the fallback for every other storage.
type LogStorage struct {
	log *slog.Logger
}

// NewLogStorage returns a LogStorage writing to log, or to slog.Default when
// log is nil.
func NewLogStorage(log *slog.Logger) *LogStorage {
	if log == nil {
		log = slog.Default()
	}
	return &LogStorage{log: log.With(logger.Component("audit"))}
}

// StoreBatch logs each event with a background context. Events already carry
// the request id and client ip, and a request context would repeat them
// through the logger's context extractors.
func (s *LogStorage) StoreBatch(_ context.Context, events []Event) error {
	ctx := context.Background()
	for _, e := range events {
		s.log.LogAttrs(ctx, slog.LevelWarn, "security event",
			slog.String("event_id", e.ID),
			slog.String("action", e.Action),
			logger.Code(e.Code),
			logger.RequestID(e.RequestID),
			logger.ClientIP(e.IP),
			logger.UserAgent(e.UserAgent),
			logger.Method(e.Method),
			logger.Path(e.Path),
			logger.Source(e.Source),
			logger.KeyPath(e.KeyPath),
			logger.Timestamp(e.CreatedAt),
		)
	}
	return nil
}
