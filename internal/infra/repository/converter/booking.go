package converter

import (
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/domain/ticket"
	sqlc "lift-reservation/internal/infra/sqlc/generated"
	"lift-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:        b.ID(),
		UserID:    b.UserID(),
		ResortID:  b.ResortID().String(),
		Date:      pgconv.DateToPgtype(b.Date().Time()),
		Slot:      b.Slot().String(),
		Status:    b.Status().String(),
		TicketID:  b.TicketID(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

// BookingFromRow rebuilds the aggregate. Rows were validated on the way in, so
// no constructor checks are repeated here.
func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		booking.ResortID(row.ResortID),
		civilDate(row.Date),
		booking.Slot(row.Slot),
		booking.Status(row.Status),
		row.TicketID,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CanceledAt),
	)
}

func civilDate(pd pgtype.Date) booking.Date {
	return booking.DateOf(pgconv.DateFromPgtype(pd), time.UTC)
}

func TicketToInfra(t *ticket.Ticket) sqlc.CreateTicketParams {
	return sqlc.CreateTicketParams{
		ID:        t.ID(),
		BookingID: t.BookingID(),
		QrPayload: t.QRPayload(),
		IssuedAt:  pgconv.TimeToPgtype(t.IssuedAt()),
	}
}

func CapacityRecordFromRow(row sqlc.CapacityRecords) capacity.Record {
	return capacity.Record{
		Key: capacity.Key{
			ResortID: booking.ResortID(row.ResortID),
			Date:     civilDate(row.Date),
			Slot:     booking.Slot(row.Slot),
		},
		Total:     row.CapacityTotal,
		Remaining: row.CapacityRemaining,
	}
}
