package imagehost

import (
	"context"
	"errors"
	"io"
)

var ErrNotConfigured = errors.New("image host not configured")

// Asset is the result of an upload: the durable public URL written into the
// photo record, and the opaque handle used for best-effort deletion.
type Asset struct {
	URL    string
	Handle string
}

// Host is the external image host collaborator. Uploads and record writes
// are two separate steps with no transactional coupling; an upload success
// followed by a record-write failure leaves an orphaned asset.
type Host interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (*Asset, error)
	Delete(ctx context.Context, handle string) error
}
