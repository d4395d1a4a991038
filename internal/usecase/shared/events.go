package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCanceled  = "booking.canceled"
)

type BookingEvent struct {
	Name       string    `json:"event"`
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	ResortID   string    `json:"resort_id"`
	Date       string    `json:"date"`
	Slot       string    `json:"slot"`
	TicketID   uuid.UUID `json:"ticket_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier delivers booking events after commit. Delivery is best effort and
// a failure never affects the booking.
type Notifier interface {
	Notify(ctx context.Context, event BookingEvent) error
}
