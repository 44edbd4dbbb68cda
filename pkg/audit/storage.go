package audit

import (
	"context"
	"errors"
)

// Storage persists batches of audit events.
// Implementations must be safe for concurrent use.
type Storage interface {
	StoreBatch(ctx context.Context, events []Event) error
}

// MultiStorage writes every batch to all of its storages. A failing storage
// does not prevent the others from receiving the batch.
type MultiStorage []Storage

func (m MultiStorage) StoreBatch(ctx context.Context, events []Event) error {
	var errs []error
	for _, s := range m {
		if err := s.StoreBatch(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
