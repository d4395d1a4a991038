package commands

import (
	"context"
	"log/slog"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/pkg/clock"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/pkg/telemetry"
	"lift-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CancellationCommands interface {
	// Cancel is idempotent: canceling an already canceled booking succeeds.
	Cancel(ctx context.Context, bookingID, userID uuid.UUID) error
}

type cancellationUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	notifier    shared.Notifier
	invalidator AvailabilityInvalidator
}

func NewCancellationUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier shared.Notifier, invalidator AvailabilityInvalidator) CancellationCommands {
	return &cancellationUseCaseImpl{
		uow:         uow,
		clock:       clk,
		notifier:    notifier,
		invalidator: invalidator,
	}
}

func (uc *cancellationUseCaseImpl) Cancel(ctx context.Context, bookingID, userID uuid.UUID) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "reservation.cancel",
		attribute.String("booking.id", bookingID.String()),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	var canceled *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		canceled = nil

		b, rerr := tx.Reads().BookingByID(ctx, bookingID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return rerr
		}
		if !b.IsOwnedBy(userID) {
			return ErrForbidden
		}
		if !b.IsActive() {
			return nil
		}

		now := uc.clock.Now()
		transitioned, rerr := tx.Bookings().Cancel(ctx, tx.DB(), b.ID(), now)
		if rerr != nil {
			return rerr
		}
		if !transitioned {
			// A concurrent cancel got there first and released the unit.
			return nil
		}

		key := capacity.Key{ResortID: b.ResortID(), Date: b.Date(), Slot: b.Slot()}
		if rerr = tx.Capacity().Release(ctx, tx.DB(), key); rerr != nil {
			if !infra.IsKind(rerr, infra.KindCapacityOverflow) {
				return rerr
			}
			slog.WarnContext(ctx, "capacity already at total on cancel",
				"booking_id", b.ID().String(),
				"resort_id", key.ResortID.String(),
				"date", key.Date.String(),
				"slot", key.Slot.String())
		}

		if rerr = b.Cancel(now); rerr != nil {
			return rerr
		}
		canceled = b
		return nil
	})
	if err != nil {
		return translateCancelErr(err)
	}

	if canceled != nil {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
		defer cancel()
		invalidateAvailability(sctx, uc.invalidator, canceled)
		notify(sctx, uc.notifier, shared.EventBookingCanceled, canceled)

		slog.InfoContext(ctx, "booking canceled", "booking_id", canceled.ID().String())
	}
	return nil
}

func translateCancelErr(err error) error {
	if errs.Is(err, ErrBookingNotFound) || errs.Is(err, ErrForbidden) {
		return err
	}
	slog.Error("cancel failed", "error", err.Error())
	return errs.Mark(err, ErrStoreUnavailable)
}
