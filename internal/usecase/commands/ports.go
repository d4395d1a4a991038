package commands

import (
	"context"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/ticket"
)

type TicketIssuer interface {
	Issue(b *booking.Booking) (*ticket.Ticket, error)
}

// QRRenderer turns a ticket payload into an image reference for the client.
type QRRenderer interface {
	Render(ctx context.Context, payload string) (string, error)
}

type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, resortID booking.ResortID, date booking.Date) error
}
