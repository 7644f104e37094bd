package notification

import (
	"context"

	"photosite/internal/domain"
)

// Sender delivers the booking notification email. Callers treat it as
// fire-and-forget: a send failure is logged and never affects the booking
// write.
type Sender interface {
	Send(ctx context.Context, b *domain.Booking) error
}
