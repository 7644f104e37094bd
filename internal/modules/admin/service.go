package admin

import (
	"context"

	"photosite/internal/domain"
)

// BookingReader, GalleryReader and CommentReader are the narrow slices of
// the other managers the dashboard aggregates over.
type BookingReader interface {
	List(ctx context.Context) []domain.Booking
	Stats(ctx context.Context) domain.BookingStats
}

type GalleryReader interface {
	Count(ctx context.Context) int
}

type CommentReader interface {
	ListAllFlat(ctx context.Context) []domain.Comment
}

type Dashboard struct {
	Bookings       domain.BookingStats `json:"bookings"`
	PhotoCount     int                 `json:"photoCount"`
	CommentCount   int                 `json:"commentCount"`
	RecentBookings []domain.Booking    `json:"recentBookings"`
	RecentComments []domain.Comment    `json:"recentComments"`
}

type Service struct {
	bookings BookingReader
	gallery  GalleryReader
	comments CommentReader
}

func NewService(bookings BookingReader, gallery GalleryReader, comments CommentReader) *Service {
	return &Service{bookings: bookings, gallery: gallery, comments: comments}
}

// Overview assembles the dashboard counters. Each underlying list already
// degrades to empty on backend failure, so the dashboard itself never errors.
func (s *Service) Overview(ctx context.Context) Dashboard {
	recent := s.bookings.List(ctx)
	if len(recent) > 5 {
		recent = recent[:5]
	}

	comments := s.comments.ListAllFlat(ctx)
	recentComments := comments
	if len(recentComments) > 5 {
		recentComments = recentComments[:5]
	}

	return Dashboard{
		Bookings:       s.bookings.Stats(ctx),
		PhotoCount:     s.gallery.Count(ctx),
		CommentCount:   len(comments),
		RecentBookings: recent,
		RecentComments: recentComments,
	}
}
