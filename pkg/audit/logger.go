package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fittrack/pkg/logger"
)

// Logger records audit events without blocking the caller. Events are queued
// on a buffered channel and written in batches by a background worker.
type Logger struct {
	storage   Storage
	fallback  Storage
	log       *slog.Logger
	requestID func(context.Context) string

	bufferSize     int
	batchSize      int
	flushInterval  time.Duration
	storageTimeout time.Duration

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewLogger starts a Logger writing to storage. Call Close on shutdown to
// flush queued events.
func NewLogger(storage Storage, opts ...Option) *Logger {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}

	l := &Logger{
		storage:        storage,
		log:            slog.Default(),
		bufferSize:     1000,
		batchSize:      100,
		flushInterval:  time.Second,
		storageTimeout: 5 * time.Second,
		done:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fallback == nil {
		l.fallback = NewLogStorage(l.log)
	}
	l.events = make(chan Event, l.bufferSize)

	l.wg.Add(1)
	go l.worker()

	return l
}

// Record enqueues an event. It fills ID and CreatedAt when empty and never
// blocks: if the queue is full or the logger is closed, the event goes
// straight to the fallback storage.
func (l *Logger) Record(ctx context.Context, e Event) {
	if err := e.Validate(); err != nil {
		l.log.ErrorContext(ctx, "audit event dropped", logger.Error(err))
		return
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.RequestID == "" && l.requestID != nil {
		e.RequestID = l.requestID(ctx)
	}

	l.mu.RLock()
	if !l.closed {
		select {
		case l.events <- e:
			l.mu.RUnlock()
			return
		default:
		}
	}
	l.mu.RUnlock()

	l.writeFallback(context.WithoutCancel(ctx), []Event{e})
}

// Close stops accepting events and waits until the queue has been flushed
// or ctx is done. Close is safe to call more than once.
func (l *Logger) Close(ctx context.Context) error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.done)
	}
	l.mu.Unlock()

	flushed := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(flushed)
	}()

	select {
	case <-flushed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Logger) worker() {
	defer l.wg.Done()

	batch := make([]Event, 0, l.batchSize)
	ticker := time.NewTicker(l.flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		l.store(batch)
		clear(batch)
		batch = batch[:0]
	}

	for {
		select {
		case e := <-l.events:
			batch = append(batch, e)
			if len(batch) >= l.batchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-l.done:
			// Senders check closed under the read lock, so nothing is added
			// to the channel after done is closed.
		drain:
			for {
				select {
				case e := <-l.events:
					batch = append(batch, e)
					if len(batch) >= l.batchSize {
						flush()
					}
				default:
					break drain
				}
			}
			flush()
			return
		}
	}
}

// store writes a batch with a context detached from any request, so a
// cancelled client never aborts an audit write.
func (l *Logger) store(events []Event) {
	ctx, cancel := context.WithTimeout(context.Background(), l.storageTimeout)
	defer cancel()

	if err := l.storage.StoreBatch(ctx, events); err != nil {
		l.log.ErrorContext(ctx, "audit storage failed", logger.Error(err), logger.Count(len(events)))
		l.writeFallback(context.Background(), events)
	}
}

func (l *Logger) writeFallback(ctx context.Context, events []Event) {
	ctx, cancel := context.WithTimeout(ctx, l.storageTimeout)
	defer cancel()

	if err := l.fallback.StoreBatch(ctx, events); err != nil {
		l.log.ErrorContext(ctx, "audit fallback failed", logger.Error(err), logger.Count(len(events)))
	}
}
