package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow holds one whole collection as a JSON-serialized array under
// a fixed key, mirroring the local key-value layout the site used before the
// remote document store existed.
type collectionRow struct {
	Key  string `gorm:"column:key;primaryKey"`
	Docs string `gorm:"column:docs"`
}

func (collectionRow) TableName() string { return "collections" }

// SQLStore is the local backend. It works against SQLite or PostgreSQL
// depending on the DSN (see database.Connect). Each write rewrites the
// collection's array in one statement, so a single added record is never
// partially written; concurrent writers are serialized by the mutex and
// otherwise last-write-wins.
type SQLStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) load(ctx context.Context, collection string) ([]Record, error) {
	var row collectionRow
	tx := s.db.WithContext(ctx).First(&row, "key = ?", collection)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return []Record{}, nil
		}
		return nil, tx.Error
	}

	var recs []Record
	if err := json.Unmarshal([]byte(row.Docs), &recs); err != nil {
		return nil, fmt.Errorf("decode collection %q: %w", collection, err)
	}
	return recs, nil
}

func (s *SQLStore) save(ctx context.Context, collection string, recs []Record) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", collection, err)
	}

	row := collectionRow{Key: collection, Docs: string(data)}
	tx := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"docs"}),
	}).Create(&row)
	return tx.Error
}

func (s *SQLStore) List(ctx context.Context, collection string, opts ListOptions) ([]Record, error) {
	recs, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}

	if len(opts.Filter) > 0 {
		filtered := make([]Record, 0, len(recs))
		for _, r := range recs {
			if matches(r, opts.Filter) {
				filtered = append(filtered, r)
			}
		}
		recs = filtered
	}

	if opts.NewestFirst {
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].CreatedAt().After(recs[j].CreatedAt())
		})
	}

	if opts.Limit > 0 && len(recs) > opts.Limit {
		recs = recs[:opts.Limit]
	}
	return recs, nil
}

func (s *SQLStore) Get(ctx context.Context, collection, id string) (Record, error) {
	recs, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *SQLStore) Add(ctx context.Context, collection string, rec Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load(ctx, collection)
	if err != nil {
		return "", err
	}

	if rec.ID() == "" {
		rec["id"] = uuid.New().String()
	}
	if _, ok := rec["createdAt"]; !ok {
		rec["createdAt"] = time.Now().UTC()
	}

	recs = append(recs, rec)
	if err := s.save(ctx, collection, recs); err != nil {
		return "", err
	}
	return rec.ID(), nil
}

func (s *SQLStore) Update(ctx context.Context, collection, id string, patch Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}

	for i, r := range recs {
		if r.ID() != id {
			continue
		}
		for k, v := range patch {
			r[k] = v
		}
		recs[i] = r
		if err := s.save(ctx, collection, recs); err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, ErrNotFound
}

func (s *SQLStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load(ctx, collection)
	if err != nil {
		return err
	}

	kept := make([]Record, 0, len(recs))
	for _, r := range recs {
		if r.ID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(recs) {
		return ErrNotFound
	}
	return s.save(ctx, collection, kept)
}

// matches applies the equality filter. Values coming back from JSON are
// strings or float64, so compare through a string form rather than type
// assertions.
func matches(r Record, filter map[string]any) bool {
	for k, want := range filter {
		if fmt.Sprint(r[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
