package store

import (
	"context"
	"errors"
	"time"
)

// Collection names. All persisted data lives in these three collections,
// regardless of which backend is active.
const (
	CollectionPhotos   = "photos"
	CollectionBookings = "bookings"
	CollectionComments = "comments"
)

var ErrNotFound = errors.New("record not found")

// Record is one document in a collection. Values are JSON/BSON scalars plus
// time.Time for timestamps. Every stored record carries "id" and "createdAt".
type Record map[string]any

// ListOptions narrows a List call. With no options set, List returns the
// collection in insertion order. NewestFirst orders by createdAt descending
// and both backends must honor it identically.
type ListOptions struct {
	Filter      map[string]any
	NewestFirst bool
	Limit       int
}

// Store is the uniform contract over named collections. Both backends are
// exposed through this asynchronous-capable interface so callers stay
// backend-agnostic: the SQL backend never blocks on I/O beyond the local
// file, the Mongo backend may suspend on the network.
//
// Write operations propagate failure. Read-degradation to an empty result
// is a caller (manager) policy, not implemented here.
type Store interface {
	List(ctx context.Context, collection string, opts ListOptions) ([]Record, error)
	Get(ctx context.Context, collection, id string) (Record, error)
	Add(ctx context.Context, collection string, rec Record) (string, error)
	Update(ctx context.Context, collection, id string, patch Record) (Record, error)
	Delete(ctx context.Context, collection, id string) error
}

func (r Record) ID() string {
	s, _ := r["id"].(string)
	return s
}

func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Time reads a timestamp value. The SQL backend round-trips time.Time
// through JSON as RFC3339 strings, so both representations are accepted.
func (r Record) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	return time.Time{}
}

func (r Record) CreatedAt() time.Time {
	return r.Time("createdAt")
}
