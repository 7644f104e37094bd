package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	st, err := NewSQLStore(db)
	require.NoError(t, err)
	return st
}

func TestSQLStore_AddAssignsIDAndTimestamp(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	id, err := st.Add(ctx, CollectionBookings, Record{"name": "Asel"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	rec, err := st.Get(ctx, CollectionBookings, id)
	require.NoError(t, err)
	assert.Equal(t, "Asel", rec.String("name"))
	assert.False(t, rec.CreatedAt().IsZero())
}

func TestSQLStore_ListPreservesInsertionOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := st.Add(ctx, CollectionPhotos, Record{"title": name})
		require.NoError(t, err)
	}

	recs, err := st.List(ctx, CollectionPhotos, ListOptions{})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "first", recs[0].String("title"))
	assert.Equal(t, "third", recs[2].String("title"))
}

func TestSQLStore_ListNewestFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := st.Add(ctx, CollectionPhotos, Record{"id": "old", "createdAt": base})
	require.NoError(t, err)
	_, err = st.Add(ctx, CollectionPhotos, Record{"id": "new", "createdAt": base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = st.Add(ctx, CollectionPhotos, Record{"id": "mid", "createdAt": base.Add(time.Minute)})
	require.NoError(t, err)

	recs, err := st.List(ctx, CollectionPhotos, ListOptions{NewestFirst: true})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "new", recs[0].ID())
	assert.Equal(t, "mid", recs[1].ID())
	assert.Equal(t, "old", recs[2].ID())

	limited, err := st.List(ctx, CollectionPhotos, ListOptions{NewestFirst: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "new", limited[0].ID())
}

func TestSQLStore_ListFilter(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Add(ctx, CollectionComments, Record{"photoId": "p1", "rating": 5})
	require.NoError(t, err)
	_, err = st.Add(ctx, CollectionComments, Record{"photoId": "p2", "rating": 4})
	require.NoError(t, err)
	_, err = st.Add(ctx, CollectionComments, Record{"photoId": "p1", "rating": 3})
	require.NoError(t, err)

	recs, err := st.List(ctx, CollectionComments, ListOptions{Filter: map[string]any{"photoId": "p1"}})
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	// Numeric values survive the JSON round trip as float64; the filter
	// still matches them against ints.
	byRating, err := st.List(ctx, CollectionComments, ListOptions{Filter: map[string]any{"rating": 4}})
	require.NoError(t, err)
	require.Len(t, byRating, 1)
	assert.Equal(t, "p2", byRating[0].String("photoId"))
}

func TestSQLStore_UpdateMergesPatch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	id, err := st.Add(ctx, CollectionBookings, Record{"name": "Asel", "status": "pending"})
	require.NoError(t, err)

	updated, err := st.Update(ctx, CollectionBookings, id, Record{"status": "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.String("status"))
	assert.Equal(t, "Asel", updated.String("name"))

	rec, err := st.Get(ctx, CollectionBookings, id)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", rec.String("status"))
}

func TestSQLStore_UpdateNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Update(context.Background(), CollectionBookings, "missing", Record{"status": "confirmed"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLStore_Delete(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	id, err := st.Add(ctx, CollectionPhotos, Record{"title": "Doomed"})
	require.NoError(t, err)

	require.NoError(t, st.Delete(ctx, CollectionPhotos, id))

	_, err = st.Get(ctx, CollectionPhotos, id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, st.Delete(ctx, CollectionPhotos, id), ErrNotFound)
}

func TestSQLStore_CollectionsAreIsolated(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Add(ctx, CollectionPhotos, Record{"title": "A"})
	require.NoError(t, err)

	recs, err := st.List(ctx, CollectionBookings, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSQLStore_TimeSurvivesRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	created := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

	id, err := st.Add(ctx, CollectionBookings, Record{"name": "Asel", "createdAt": created})
	require.NoError(t, err)

	rec, err := st.Get(ctx, CollectionBookings, id)
	require.NoError(t, err)
	assert.True(t, rec.CreatedAt().Equal(created))
}
