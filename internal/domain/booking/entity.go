package booking

import (
	"errors"
	"time"

	"lift-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrMissingUser     = errors.New("user id is required")
	ErrDateInPast      = errors.New("date is before today at the resort")
	ErrSlotEnded       = errors.New("slot has already ended")
	ErrAlreadyCanceled = errors.New("booking is already canceled")
)

type Services struct {
	Clock    clock.Clock
	Location *time.Location
}

// Booking is one user's claim on one unit of capacity for a resort/date/slot.
type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	resortID   ResortID
	date       Date
	slot       Slot
	status     Status
	ticketID   uuid.UUID
	createdAt  time.Time
	canceledAt *time.Time
}

// NewBooking validates the request against the resort clock and returns a confirmed booking.
func NewBooking(services *Services, userID uuid.UUID, resortID ResortID, date Date, slot Slot) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if resortID == "" {
		return nil, ErrInvalidResortID
	}
	if !slot.IsValid() {
		return nil, ErrInvalidSlot
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	now := services.Clock.Now()
	today := DateOf(now, services.Location)
	if date.Before(today) {
		return nil, ErrDateInPast
	}
	if date.Equal(today) {
		_, end := slot.Window(date, services.Location)
		if !now.Before(end) {
			return nil, ErrSlotEnded
		}
	}

	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		resortID:  resortID,
		date:      date,
		slot:      slot,
		status:    StatusConfirmed,
		createdAt: now,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	resortID ResortID,
	date Date,
	slot Slot,
	status Status,
	ticketID uuid.UUID,
	createdAt time.Time,
	canceledAt *time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		resortID:   resortID,
		date:       date,
		slot:       slot,
		status:     status,
		ticketID:   ticketID,
		createdAt:  createdAt,
		canceledAt: canceledAt,
	}
}

// AttachTicket binds the issued ticket. A booking carries exactly one ticket.
func (b *Booking) AttachTicket(ticketID uuid.UUID) {
	b.ticketID = ticketID
}

func (b *Booking) Cancel(at time.Time) error {
	if b.status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	b.status = StatusCanceled
	b.canceledAt = &at
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) ResortID() ResortID     { return b.resortID }
func (b *Booking) Date() Date             { return b.date }
func (b *Booking) Slot() Slot             { return b.slot }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) TicketID() uuid.UUID    { return b.ticketID }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) CanceledAt() *time.Time { return b.canceledAt }
