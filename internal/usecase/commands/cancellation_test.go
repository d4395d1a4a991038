//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/pkg/clock"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (f *fixture) cancellation() commands.CancellationCommands {
	return commands.NewCancellationUseCase(f.uow, clock.NewMockClock(now), f.notifier, f.invalidator)
}

func TestCancellation_Cancel(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	date := booking.NewDate(2026, 1, 12)
	key := capacity.Key{ResortID: "alta", Date: date, Slot: booking.SlotPM}

	confirmed := func() *booking.Booking {
		return booking.ReconstructBooking(uuid.New(), owner, "alta", date, booking.SlotPM,
			booking.StatusConfirmed, uuid.New(), now, nil)
	}

	t.Run("basic success case", func(t *testing.T) {
		f := newFixture(t)
		b := confirmed()

		gomock.InOrder(
			f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil),
			f.bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID(), now).Return(true, nil),
			f.capacity.EXPECT().Release(gomock.Any(), gomock.Any(), key).Return(nil),
		)
		f.invalidator.EXPECT().Invalidate(gomock.Any(), booking.ResortID("alta"), date).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Cond(func(e shared.BookingEvent) bool {
			return e.Name == shared.EventBookingCanceled && e.BookingID == b.ID()
		})).Return(nil)

		require.NoError(t, f.cancellation().Cancel(ctx, b.ID(), owner))
	})

	t.Run("already canceled is a no-op", func(t *testing.T) {
		f := newFixture(t)
		canceledAt := now
		b := booking.ReconstructBooking(uuid.New(), owner, "alta", date, booking.SlotPM,
			booking.StatusCanceled, uuid.New(), now, &canceledAt)
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)

		assert.NoError(t, f.cancellation().Cancel(ctx, b.ID(), owner))
	})

	t.Run("lost race to a concurrent cancel", func(t *testing.T) {
		f := newFixture(t)
		b := confirmed()
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID(), now).Return(false, nil)

		assert.NoError(t, f.cancellation().Cancel(ctx, b.ID(), owner))
	})

	t.Run("capacity already full is logged and tolerated", func(t *testing.T) {
		f := newFixture(t)
		b := confirmed()
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID(), now).Return(true, nil)
		f.capacity.EXPECT().Release(gomock.Any(), gomock.Any(), key).
			Return(infra.NewRepoErr(infra.KindCapacityOverflow, "capacity already at total"))
		f.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.cancellation().Cancel(ctx, b.ID(), owner))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().BookingByID(gomock.Any(), id).Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking not found"))

		err := f.cancellation().Cancel(ctx, id, owner)
		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})

	t.Run("someone else's booking", func(t *testing.T) {
		f := newFixture(t)
		b := confirmed()
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)

		err := f.cancellation().Cancel(ctx, b.ID(), uuid.New())
		assert.True(t, errs.Is(err, commands.ErrForbidden))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		b := confirmed()
		f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID(), now).
			Return(false, infra.NewRepoErr(infra.KindDBFailure, "connection reset"))

		err := f.cancellation().Cancel(ctx, b.ID(), owner)
		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))
	})
}
