package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is a booking joined with its ticket.
type BookingView struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	ResortID   string     `json:"resort_id"`
	Date       string     `json:"date"`
	Slot       string     `json:"slot"`
	Status     string     `json:"status"`
	TicketID   uuid.UUID  `json:"ticket_id"`
	QRPayload  string     `json:"qr_payload"`
	IssuedAt   time.Time  `json:"issued_at"`
	CreatedAt  time.Time  `json:"created_at"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
}

// BookingListItem is one row of the staff day listing.
type BookingListItem struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Slot       string     `json:"slot"`
	Status     string     `json:"status"`
	TicketID   uuid.UUID  `json:"ticket_id"`
	CreatedAt  time.Time  `json:"created_at"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
}

type AvailabilityView struct {
	ResortID string `json:"resort_id"`
	Date     string `json:"date"`
	AM       int32  `json:"am"`
	PM       int32  `json:"pm"`
}

// TicketClaimsView is what a signed QR payload attests to.
type TicketClaimsView struct {
	TicketID uuid.UUID `json:"ticket_id"`
	ResortID string    `json:"resort_id"`
	Date     string    `json:"date"`
	Slot     string    `json:"slot"`
}
