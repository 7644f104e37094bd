package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/store"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phoneSeparators are stripped before the 10-digit check, matching what the
// booking form accepts.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "")

type Service struct {
	store  RecordStore
	notifs Notifier
	log    *zap.Logger
}

func NewService(st RecordStore, notifs Notifier, log *zap.Logger) *Service {
	return &Service{store: st, notifs: notifs, log: log}
}

// Create validates the submission and writes a pending booking. The email
// notification is fired in the background after a successful write; its
// failure never rolls back or blocks the booking.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		EventType: req.EventType,
		Date:      req.Date,
		Message:   strings.TrimSpace(req.Message),
		Status:    domain.BookingPending,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.store.Add(ctx, store.CollectionBookings, toRecord(b))
	if err != nil {
		return nil, err
	}
	b.ID = id

	if s.notifs != nil {
		go s.notify(b)
	}
	return b, nil
}

func (s *Service) notify(b *domain.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.notifs.Send(ctx, b); err != nil {
		s.log.Warn("booking notification failed",
			zap.String("booking_id", b.ID),
			zap.Error(err))
	}
}

// List returns all bookings newest-first. A backend failure degrades to an
// empty list so the dashboard always has a renderable state.
func (s *Service) List(ctx context.Context) []domain.Booking {
	recs, err := s.store.List(ctx, store.CollectionBookings, store.ListOptions{NewestFirst: true})
	if err != nil {
		s.log.Warn("listing bookings failed, returning empty", zap.Error(err))
		return []domain.Booking{}
	}

	out := make([]domain.Booking, 0, len(recs))
	for _, r := range recs {
		out = append(out, fromRecord(r))
	}
	return out
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	rec, err := s.store.Get(ctx, store.CollectionBookings, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b := fromRecord(rec)
	return &b, nil
}

// SetStatus overwrites the status and stamps updatedAt. Any status is
// reachable from any other; the single-admin model deliberately imposes no
// transition restrictions, cancellation included.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	patch := store.Record{
		"status":    string(status),
		"updatedAt": time.Now().UTC(),
	}
	rec, err := s.store.Update(ctx, store.CollectionBookings, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b := fromRecord(rec)
	return &b, nil
}

// Delete removes the booking permanently. No soft delete, no archive.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, store.CollectionBookings, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Stats recomputes the per-status counts from the full current list. The
// dataset is small; correctness over incremental counters.
func (s *Service) Stats(ctx context.Context) domain.BookingStats {
	stats := domain.BookingStats{}
	for _, b := range s.List(ctx) {
		stats.Total++
		switch b.Status {
		case domain.BookingPending:
			stats.Pending++
		case domain.BookingConfirmed:
			stats.Confirmed++
		case domain.BookingCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

func validateCreate(req CreateBookingRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalidField("name", "required")
	}

	phone := phoneSeparators.Replace(strings.TrimSpace(req.Phone))
	if phone == "" {
		return invalidField("phone", "required")
	}
	if len(phone) != 10 || !digitsOnly(phone) {
		return invalidField("phone", "must be a 10-digit phone number")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return invalidField("email", "required")
	}
	if !emailRe.MatchString(email) {
		return invalidField("email", "must be a valid email address")
	}

	if req.EventType == "" {
		return invalidField("eventType", "required")
	}
	if !domain.ValidEventType(req.EventType) {
		return invalidField("eventType", "unknown event type")
	}

	if req.Date == "" {
		return invalidField("date", "required")
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return invalidField("date", "must be a calendar date (YYYY-MM-DD)")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return invalidField("date", "must not be in the past")
	}
	return nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toRecord(b *domain.Booking) store.Record {
	rec := store.Record{
		"name":      b.Name,
		"phone":     b.Phone,
		"email":     b.Email,
		"eventType": b.EventType,
		"date":      b.Date,
		"message":   b.Message,
		"status":    string(b.Status),
		"createdAt": b.CreatedAt,
	}
	return rec
}

func fromRecord(r store.Record) domain.Booking {
	b := domain.Booking{
		ID:        r.ID(),
		Name:      r.String("name"),
		Phone:     r.String("phone"),
		Email:     r.String("email"),
		EventType: r.String("eventType"),
		Date:      r.String("date"),
		Message:   r.String("message"),
		Status:    domain.BookingStatus(r.String("status")),
		CreatedAt: r.CreatedAt(),
	}
	if t := r.Time("updatedAt"); !t.IsZero() {
		b.UpdatedAt = &t
	}
	return b
}
