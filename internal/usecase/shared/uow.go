package shared

import (
	"context"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/domain/ticket"
	sqlc "lift-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Capacity() CapacityRepository
	Bookings() BookingRepository
	Tickets() TicketRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveBookingForSlot(ctx context.Context, userID uuid.UUID, key capacity.Key) (*booking.Booking, error)
}

// CapacityRepository owns the remaining counter of each resort/date/slot.
// Reserve and Release are the only writers.
type CapacityRepository interface {
	// Reserve takes one unit. It fails with KindNoCapacity when none is left.
	Reserve(ctx context.Context, tx sqlc.DBTX, key capacity.Key, total int32) (int32, error)
	// Release returns one unit. It fails with KindCapacityOverflow when the
	// counter is already at its total.
	Release(ctx context.Context, tx sqlc.DBTX, key capacity.Key) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// Cancel reports whether this call moved the booking from confirmed to canceled.
	Cancel(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error)
}

type TicketRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *ticket.Ticket) error
}
