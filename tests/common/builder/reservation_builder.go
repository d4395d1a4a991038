//go:build unit || e2e

package builder

import (
	"time"

	reqdto "lift-reservation/internal/handler/dto/request"
	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	UserID   uuid.UUID
	ResortID string
	Date     string
	Slot     string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		UserID:   uuid.New(),
		ResortID: "alta",
		Date:     time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		Slot:     "AM",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithUser(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithResort(id string) *ReservationBuilder {
	b.ResortID = id
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithSlot(slot string) *ReservationBuilder {
	b.Slot = slot
	return b
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ResortID: b.ResortID,
		Date:     b.Date,
		Slot:     b.Slot,
	}
}

func (b *ReservationBuilder) BuildInput() commands.ReserveInput {
	return commands.ReserveInput{
		UserID:   b.UserID,
		ResortID: b.ResortID,
		Date:     b.Date,
		Slot:     b.Slot,
	}
}

func (b *ReservationBuilder) BuildTicketResult() *commands.TicketResult {
	return &commands.TicketResult{
		TicketID:  uuid.New(),
		BookingID: uuid.New(),
		ResortID:  b.ResortID,
		Date:      b.Date,
		Slot:      b.Slot,
		QRPayload: "LT1.eyJ0aWQiOiJ4In0.c2ln",
		IssuedAt:  time.Now().UTC(),
	}
}

func (b *ReservationBuilder) BuildView() *queries.BookingView {
	now := time.Now().UTC()
	return &queries.BookingView{
		ID:        uuid.New(),
		UserID:    b.UserID,
		ResortID:  b.ResortID,
		Date:      b.Date,
		Slot:      b.Slot,
		Status:    "confirmed",
		TicketID:  uuid.New(),
		QRPayload: "LT1.eyJ0aWQiOiJ4In0.c2ln",
		IssuedAt:  now,
		CreatedAt: now,
	}
}
