package booking

import (
	"context"

	"photosite/internal/domain"
	"photosite/internal/store"
)

// RecordStore is the slice of the record store contract this module uses.
// Satisfied by both store backends.
type RecordStore interface {
	List(ctx context.Context, collection string, opts store.ListOptions) ([]store.Record, error)
	Get(ctx context.Context, collection, id string) (store.Record, error)
	Add(ctx context.Context, collection string, rec store.Record) (string, error)
	Update(ctx context.Context, collection, id string, patch store.Record) (store.Record, error)
	Delete(ctx context.Context, collection, id string) error
}

// Notifier sends the booking confirmation email, fire-and-forget.
type Notifier interface {
	Send(ctx context.Context, b *domain.Booking) error
}
