package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// EventTypes is the fixed set of session types offered on the booking form.
var EventTypes = []string{
	"Wedding",
	"Pre-Wedding",
	"Portrait",
	"Family Portrait",
	"Birthday Party",
	"Corporate Event",
	"Studio Session",
	"Product Photography",
	"Other",
}

// Booking is a public session request. Only its status may change after
// creation, and only through an admin action.
type Booking struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email"`
	EventType string        `json:"eventType"`
	Date      string        `json:"date"` // calendar date, 2006-01-02
	Message   string        `json:"message,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

// BookingStats is recomputed from the full booking list on every call.
type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

func ValidEventType(t string) bool {
	for _, e := range EventTypes {
		if e == t {
			return true
		}
	}
	return false
}
