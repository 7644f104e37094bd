package comment

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/store"
)

const defaultRating = 5

type Service struct {
	store RecordStore
	log   *zap.Logger
}

func NewService(st RecordStore, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

// Add stores a review entry for a photo. Rating falls back to 5 when absent
// or zero; out-of-range ratings are rejected. Comments are auto-approved:
// the field exists but there is no moderation queue.
func (s *Service) Add(ctx context.Context, photoID string, req AddCommentRequest) (*domain.Comment, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, &ValidationError{Field: "comment", Reason: "required"}
	}

	rating := req.Rating
	if rating == 0 {
		rating = defaultRating
	}
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	c := &domain.Comment{
		PhotoID:   photoID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Comment:   strings.TrimSpace(req.Comment),
		Rating:    rating,
		Approved:  true,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.store.Add(ctx, store.CollectionComments, toRecord(c))
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

// ListForPhoto returns the photo's comments newest-first. A backend failure
// degrades to an empty list so photo cards render defensively.
func (s *Service) ListForPhoto(ctx context.Context, photoID string) []domain.Comment {
	recs, err := s.store.List(ctx, store.CollectionComments, store.ListOptions{
		Filter:      map[string]any{"photoId": photoID},
		NewestFirst: true,
	})
	if err != nil {
		s.log.Warn("listing comments failed, returning empty",
			zap.String("photo_id", photoID),
			zap.Error(err))
		return []domain.Comment{}
	}
	return fromRecords(recs)
}

// ListAllFlat returns every comment across every photo, newest-first, for
// the admin aggregate view.
func (s *Service) ListAllFlat(ctx context.Context) []domain.Comment {
	recs, err := s.store.List(ctx, store.CollectionComments, store.ListOptions{NewestFirst: true})
	if err != nil {
		s.log.Warn("listing all comments failed, returning empty", zap.Error(err))
		return []domain.Comment{}
	}
	return fromRecords(recs)
}

// Delete removes a comment by id regardless of which photo it references.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, store.CollectionComments, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Count(ctx context.Context, photoID string) int {
	return len(s.ListForPhoto(ctx, photoID))
}

// AverageRating is the arithmetic mean of the photo's ratings rounded to one
// decimal place, 0 when there are no comments. Always derived from the
// current comment set, never stored, so it cannot drift.
func (s *Service) AverageRating(ctx context.Context, photoID string) float64 {
	comments := s.ListForPhoto(ctx, photoID)
	if len(comments) == 0 {
		return 0
	}

	sum := 0
	for _, c := range comments {
		sum += c.Rating
	}
	mean := float64(sum) / float64(len(comments))
	return math.Round(mean*10) / 10
}

func toRecord(c *domain.Comment) store.Record {
	return store.Record{
		"photoId":   c.PhotoID,
		"name":      c.Name,
		"email":     c.Email,
		"comment":   c.Comment,
		"rating":    c.Rating,
		"approved":  c.Approved,
		"createdAt": c.CreatedAt,
	}
}

func fromRecords(recs []store.Record) []domain.Comment {
	out := make([]domain.Comment, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.Comment{
			ID:        r.ID(),
			PhotoID:   r.String("photoId"),
			Name:      r.String("name"),
			Email:     r.String("email"),
			Comment:   r.String("comment"),
			Rating:    r.Int("rating"),
			Approved:  r.Bool("approved"),
			CreatedAt: r.CreatedAt(),
		})
	}
	return out
}
