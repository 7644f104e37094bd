package gallery

import (
	"context"
	"io"

	"photosite/internal/imagehost"
	"photosite/internal/store"
)

// RecordStore is the slice of the record store contract this module uses.
type RecordStore interface {
	List(ctx context.Context, collection string, opts store.ListOptions) ([]store.Record, error)
	Get(ctx context.Context, collection, id string) (store.Record, error)
	Add(ctx context.Context, collection string, rec store.Record) (string, error)
	Delete(ctx context.Context, collection, id string) error
}

// ImageHost persists the image asset and returns its durable URL plus an
// opaque handle for later deletion.
type ImageHost interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (*imagehost.Asset, error)
	Delete(ctx context.Context, handle string) error
}
