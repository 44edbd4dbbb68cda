package audit_test

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/fittrack/pkg/audit"
)

type memStorage struct {
	mu      sync.Mutex
	batches [][]audit.Event
	err     error
}

func (m *memStorage) StoreBatch(_ context.Context, events []audit.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.batches = append(m.batches, slices.Clone(events))
	return nil
}

func (m *memStorage) events() []audit.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []audit.Event
	for _, b := range m.batches {
		all = append(all, b...)
	}
	return all
}

func (m *memStorage) batchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.batches)
}

// blockingStorage holds every write until release is closed.
type blockingStorage struct {
	memStorage
	release chan struct{}
}

func (b *blockingStorage) StoreBatch(ctx context.Context, events []audit.Event) error {
	<-b.release
	return b.memStorage.StoreBatch(ctx, events)
}
