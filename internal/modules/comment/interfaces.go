package comment

import (
	"context"

	"photosite/internal/store"
)

// RecordStore is the slice of the record store contract this module uses.
type RecordStore interface {
	List(ctx context.Context, collection string, opts store.ListOptions) ([]store.Record, error)
	Add(ctx context.Context, collection string, rec store.Record) (string, error)
	Delete(ctx context.Context, collection, id string) error
}
