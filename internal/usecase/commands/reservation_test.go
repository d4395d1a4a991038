//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/domain/ticket"
	"lift-reservation/internal/infra"
	sqlc "lift-reservation/internal/infra/sqlc/generated"
	"lift-reservation/internal/pkg/clock"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/shared"
	commandsmock "lift-reservation/tests/mock/commands"
	sharedmock "lift-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 1, 10, 7, 0, 0, 0, time.UTC)

type fixture struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	capacity    *sharedmock.MockCapacityRepository
	bookings    *sharedmock.MockBookingRepository
	tickets     *sharedmock.MockTicketRepository
	notifier    *sharedmock.MockNotifier
	issuer      *commandsmock.MockTicketIssuer
	renderer    *commandsmock.MockQRRenderer
	invalidator *commandsmock.MockAvailabilityInvalidator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		capacity:    sharedmock.NewMockCapacityRepository(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		tickets:     sharedmock.NewMockTicketRepository(ctrl),
		notifier:    sharedmock.NewMockNotifier(ctrl),
		issuer:      commandsmock.NewMockTicketIssuer(ctrl),
		renderer:    commandsmock.NewMockQRRenderer(ctrl),
		invalidator: commandsmock.NewMockAvailabilityInvalidator(ctrl),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Capacity().Return(f.capacity).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Tickets().Return(f.tickets).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func (f *fixture) reservation(t *testing.T, withRenderer bool) commands.ReservationCommands {
	t.Helper()
	policy, err := capacity.NewPolicy(100, map[string]int32{"tiny": 1})
	require.NoError(t, err)
	deps := commands.ReservationDeps{
		UoW:         f.uow,
		Issuer:      f.issuer,
		Policy:      policy,
		Clock:       clock.NewMockClock(now),
		Location:    time.UTC,
		Notifier:    f.notifier,
		Invalidator: f.invalidator,
	}
	if withRenderer {
		deps.Renderer = f.renderer
	}
	return commands.NewReservationUseCase(deps)
}

func issuedTicket(b *booking.Booking) *ticket.Ticket {
	return ticket.Reconstruct(uuid.New(), b.ID(), "LT1.body.sig", now)
}

func TestReservation_Reserve(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	in := commands.ReserveInput{UserID: userID, ResortID: "alta", Date: "2026-01-12", Slot: "AM"}
	key := capacity.Key{ResortID: "alta", Date: booking.NewDate(2026, 1, 12), Slot: booking.SlotAM}
	notFound := infra.NewRepoErr(infra.KindNotFound, "booking not found")

	t.Run("basic success case", func(t *testing.T) {
		f := newFixture(t)
		var issued *ticket.Ticket

		gomock.InOrder(
			f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), userID, key).Return(nil, notFound),
			f.capacity.EXPECT().Reserve(gomock.Any(), gomock.Any(), key, int32(100)).Return(int32(99), nil),
			f.issuer.EXPECT().Issue(gomock.Any()).DoAndReturn(func(b *booking.Booking) (*ticket.Ticket, error) {
				issued = issuedTicket(b)
				return issued, nil
			}),
			f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Cond(func(b *booking.Booking) bool {
				return b.TicketID() == issued.ID() && b.UserID() == userID
			})).Return(nil),
			f.tickets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)
		f.renderer.EXPECT().Render(gomock.Any(), "LT1.body.sig").Return("https://qr.example/img?data=x", nil)
		f.invalidator.EXPECT().Invalidate(gomock.Any(), booking.ResortID("alta"), key.Date).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Cond(func(e shared.BookingEvent) bool {
			return e.Name == shared.EventBookingConfirmed && e.UserID == userID && e.Slot == "AM"
		})).Return(nil)

		result, err := f.reservation(t, true).Reserve(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, issued.ID(), result.TicketID)
		assert.Equal(t, "alta", result.ResortID)
		assert.Equal(t, "2026-01-12", result.Date)
		assert.Equal(t, "AM", result.Slot)
		assert.Equal(t, "LT1.body.sig", result.QRPayload)
		assert.Equal(t, "https://qr.example/img?data=x", result.QRImageURL)
		assert.Equal(t, now, result.IssuedAt)
	})

	t.Run("uses the per-resort total", func(t *testing.T) {
		f := newFixture(t)
		tinyKey := capacity.Key{ResortID: "tiny", Date: key.Date, Slot: key.Slot}

		f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), userID, tinyKey).Return(nil, notFound)
		f.capacity.EXPECT().Reserve(gomock.Any(), gomock.Any(), tinyKey, int32(1)).Return(int32(0), nil)
		f.issuer.EXPECT().Issue(gomock.Any()).DoAndReturn(func(b *booking.Booking) (*ticket.Ticket, error) {
			return issuedTicket(b), nil
		})
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.tickets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.reservation(t, false).Reserve(ctx, commands.ReserveInput{UserID: userID, ResortID: "tiny", Date: "2026-01-12", Slot: "am"})
		require.NoError(t, err)
		assert.Empty(t, result.QRImageURL, "no renderer configured")
	})

	t.Run("side effect failures do not fail the booking", func(t *testing.T) {
		f := newFixture(t)

		f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)
		f.capacity.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int32(5), nil)
		f.issuer.EXPECT().Issue(gomock.Any()).DoAndReturn(func(b *booking.Booking) (*ticket.Ticket, error) {
			return issuedTicket(b), nil
		})
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.tickets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return("", errs.New("renderer down"))
		f.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("redis down"))
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errs.New("broker down"))

		result, err := f.reservation(t, true).Reserve(ctx, in)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.TicketID)
		assert.Empty(t, result.QRImageURL)
	})

	t.Run("side effects run after the request is canceled", func(t *testing.T) {
		f := newFixture(t)
		reqCtx, cancel := context.WithCancel(ctx)

		f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)
		f.capacity.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int32(5), nil)
		f.issuer.EXPECT().Issue(gomock.Any()).DoAndReturn(func(b *booking.Booking) (*ticket.Ticket, error) {
			return issuedTicket(b), nil
		})
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.tickets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, sqlc.DBTX, *ticket.Ticket) error {
				cancel()
				return nil
			})
		f.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ booking.ResortID, _ booking.Date) error {
				return ctx.Err()
			})
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ shared.BookingEvent) error {
				assert.NoError(t, ctx.Err())
				return nil
			})

		_, err := f.reservation(t, false).Reserve(reqCtx, in)
		require.NoError(t, err)
	})

	validationCases := []struct {
		name string
		in   commands.ReserveInput
	}{
		{name: "bad slot", in: commands.ReserveInput{UserID: userID, ResortID: "alta", Date: "2026-01-12", Slot: "NOON"}},
		{name: "bad date", in: commands.ReserveInput{UserID: userID, ResortID: "alta", Date: "12/01/2026", Slot: "AM"}},
		{name: "bad resort", in: commands.ReserveInput{UserID: userID, ResortID: "Alta Resort", Date: "2026-01-12", Slot: "AM"}},
		{name: "date in the past", in: commands.ReserveInput{UserID: userID, ResortID: "alta", Date: "2026-01-09", Slot: "AM"}},
		{name: "missing user", in: commands.ReserveInput{ResortID: "alta", Date: "2026-01-12", Slot: "AM"}},
	}
	for _, tc := range validationCases {
		t.Run("validation: "+tc.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.reservation(t, false).Reserve(ctx, tc.in)
			assert.True(t, errs.Is(err, commands.ErrValidation))
		})
	}

	t.Run("duplicate active booking leaves capacity untouched", func(t *testing.T) {
		f := newFixture(t)
		existing := booking.ReconstructBooking(uuid.New(), userID, "alta", key.Date, key.Slot,
			booking.StatusConfirmed, uuid.New(), now, nil)
		f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), userID, key).Return(existing, nil)

		_, err := f.reservation(t, false).Reserve(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrDuplicateBooking))
	})

	t.Run("unique index race maps to duplicate", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)
		f.capacity.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int32(5), nil)
		f.issuer.EXPECT().Issue(gomock.Any()).DoAndReturn(func(b *booking.Booking) (*ticket.Ticket, error) {
			return issuedTicket(b), nil
		})
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindDuplicateKey, "active booking exists"))

		_, err := f.reservation(t, false).Reserve(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrDuplicateBooking))
	})

	t.Run("sold out", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)
		f.capacity.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int32(0), infra.NewRepoErr(infra.KindNoCapacity, "no capacity left"))

		_, err := f.reservation(t, false).Reserve(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrNoCapacity))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.NewRepoErr(infra.KindTimeout, "statement timeout"))

		_, err := f.reservation(t, false).Reserve(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))
	})

	t.Run("issuer failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().ActiveBookingForSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)
		f.capacity.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int32(5), nil)
		f.issuer.EXPECT().Issue(gomock.Any()).Return(nil, errs.New("mac failure"))

		_, err := f.reservation(t, false).Reserve(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))
	})
}
