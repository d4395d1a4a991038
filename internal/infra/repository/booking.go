package repository

import (
	"context"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/infra/repository/converter"
	sqlc "lift-reservation/internal/infra/sqlc/generated"
	"lift-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.queries.CancelBooking(ctx, tx, sqlc.CancelBookingParams{
		ID:         id,
		CanceledAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return affected == 1, nil
}
