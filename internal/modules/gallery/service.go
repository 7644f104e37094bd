package gallery

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/store"
)

type Service struct {
	store  RecordStore
	host   ImageHost
	folder string
	log    *zap.Logger
}

// NewService wires the gallery manager. host may be nil when the image host
// is unconfigured; uploads then fail with ErrUploadUnavailable while reads
// keep working.
func NewService(st RecordStore, host ImageHost, folder string, log *zap.Logger) *Service {
	return &Service{store: st, host: host, folder: folder, log: log}
}

// List returns photos newest-first, optionally narrowed to a category.
// Category matching is case-insensitive, done in memory so both backends
// behave identically. A backend failure degrades to an empty list.
func (s *Service) List(ctx context.Context, category string) []domain.Photo {
	recs, err := s.store.List(ctx, store.CollectionPhotos, store.ListOptions{NewestFirst: true})
	if err != nil {
		s.log.Warn("listing photos failed, returning empty", zap.Error(err))
		return []domain.Photo{}
	}

	photos := fromRecords(recs)
	if category == "" {
		return photos
	}
	return filterCategory(photos, category)
}

// Latest returns the n most recent photos for the homepage strip.
func (s *Service) Latest(ctx context.Context, n int) []domain.Photo {
	if n <= 0 {
		n = 6
	}
	recs, err := s.store.List(ctx, store.CollectionPhotos, store.ListOptions{NewestFirst: true, Limit: n})
	if err != nil {
		s.log.Warn("listing latest photos failed, returning empty", zap.Error(err))
		return []domain.Photo{}
	}
	return fromRecords(recs)
}

// ListPublic is List with the sample-set substitution for the public
// gallery: when the store has no photos the built-in samples are shown
// instead. The substitution is presentational only and never written back.
func (s *Service) ListPublic(ctx context.Context, category string) []domain.Photo {
	photos := s.List(ctx, "")
	if len(photos) == 0 {
		photos = SamplePhotos()
	}
	if category == "" {
		return photos
	}
	return filterCategory(photos, category)
}

// Add uploads the asset, then writes the photo record. The two steps have
// no transactional coupling: an upload success followed by a record-write
// failure leaves an orphaned asset.
func (s *Service) Add(ctx context.Context, req AddPhotoRequest, file io.Reader, filename string) (*domain.Photo, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "required"}
	}
	if file == nil {
		return nil, &ValidationError{Field: "image", Reason: "required"}
	}
	if s.host == nil {
		return nil, ErrUploadUnavailable
	}

	asset, err := s.host.Upload(ctx, file, filename, s.folder)
	if err != nil {
		return nil, err
	}

	p := &domain.Photo{
		Title:       strings.TrimSpace(req.Title),
		Category:    strings.TrimSpace(req.Category),
		ImageURL:    asset.URL,
		Description: strings.TrimSpace(req.Description),
		StoragePath: asset.Handle,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.store.Add(ctx, store.CollectionPhotos, toRecord(p))
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// Delete removes the photo record, then best-effort removes the backing
// asset. Asset-deletion failure is logged, not surfaced, so the catalog
// stays consistent even when the asset store is unreachable.
func (s *Service) Delete(ctx context.Context, id string) error {
	rec, err := s.store.Get(ctx, store.CollectionPhotos, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.store.Delete(ctx, store.CollectionPhotos, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if handle := rec.String("storagePath"); handle != "" && s.host != nil {
		if err := s.host.Delete(ctx, handle); err != nil {
			s.log.Warn("deleting photo asset failed",
				zap.String("photo_id", id),
				zap.String("handle", handle),
				zap.Error(err))
		}
	}
	return nil
}

// Count is used by the admin dashboard.
func (s *Service) Count(ctx context.Context) int {
	return len(s.List(ctx, ""))
}

func filterCategory(photos []domain.Photo, category string) []domain.Photo {
	out := make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func toRecord(p *domain.Photo) store.Record {
	return store.Record{
		"title":       p.Title,
		"category":    p.Category,
		"imageUrl":    p.ImageURL,
		"description": p.Description,
		"storagePath": p.StoragePath,
		"createdAt":   p.CreatedAt,
	}
}

func fromRecords(recs []store.Record) []domain.Photo {
	out := make([]domain.Photo, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.Photo{
			ID:          r.ID(),
			Title:       r.String("title"),
			Category:    r.String("category"),
			ImageURL:    r.String("imageUrl"),
			Description: r.String("description"),
			StoragePath: r.String("storagePath"),
			CreatedAt:   r.CreatedAt(),
		})
	}
	return out
}
