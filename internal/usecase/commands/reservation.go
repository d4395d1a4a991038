package commands

import (
	"context"
	"log/slog"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/domain/ticket"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/pkg/clock"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/pkg/telemetry"
	"lift-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Upper bound for post-commit side effects, detached from the request context.
const sideEffectTimeout = 2 * time.Second

type ReserveInput struct {
	UserID   uuid.UUID
	ResortID string
	Date     string
	Slot     string
}

type TicketResult struct {
	TicketID   uuid.UUID
	BookingID  uuid.UUID
	ResortID   string
	Date       string
	Slot       string
	QRPayload  string
	QRImageURL string
	IssuedAt   time.Time
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*TicketResult, error)
}

type ReservationDeps struct {
	UoW         shared.UnitOfWork
	Issuer      TicketIssuer
	Policy      *capacity.Policy
	Clock       clock.Clock
	Location    *time.Location
	Renderer    QRRenderer // optional
	Notifier    shared.Notifier
	Invalidator AvailabilityInvalidator
}

type reservationUseCaseImpl struct {
	uow         shared.UnitOfWork
	issuer      TicketIssuer
	policy      *capacity.Policy
	services    *booking.Services
	renderer    QRRenderer
	notifier    shared.Notifier
	invalidator AvailabilityInvalidator
}

func NewReservationUseCase(deps ReservationDeps) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:         deps.UoW,
		issuer:      deps.Issuer,
		policy:      deps.Policy,
		services:    &booking.Services{Clock: deps.Clock, Location: deps.Location},
		renderer:    deps.Renderer,
		notifier:    deps.Notifier,
		invalidator: deps.Invalidator,
	}
}

func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, in ReserveInput) (result *TicketResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "reservation.reserve",
		attribute.String("resort.id", in.ResortID),
		attribute.String("booking.date", in.Date),
		attribute.String("booking.slot", in.Slot),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	b, err := uc.newBooking(in)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	key := capacity.Key{ResortID: b.ResortID(), Date: b.Date(), Slot: b.Slot()}

	var issued *ticket.Ticket
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		issued = nil

		_, rerr := tx.Reads().ActiveBookingForSlot(ctx, b.UserID(), key)
		if rerr == nil {
			return ErrDuplicateBooking
		}
		if !infra.IsKind(rerr, infra.KindNotFound) {
			return rerr
		}

		if _, rerr = tx.Capacity().Reserve(ctx, tx.DB(), key, uc.policy.TotalFor(key.ResortID)); rerr != nil {
			return rerr
		}

		// From here on any error rolls the transaction back, which restores
		// the unit taken above.
		tk, rerr := uc.issuer.Issue(b)
		if rerr != nil {
			return rerr
		}
		b.AttachTicket(tk.ID())

		if rerr = tx.Bookings().Create(ctx, tx.DB(), b); rerr != nil {
			return rerr
		}
		if rerr = tx.Tickets().Create(ctx, tx.DB(), tk); rerr != nil {
			return rerr
		}

		issued = tk
		return nil
	})
	if err != nil {
		return nil, translateReserveErr(err)
	}

	result = &TicketResult{
		TicketID:  issued.ID(),
		BookingID: b.ID(),
		ResortID:  b.ResortID().String(),
		Date:      b.Date().String(),
		Slot:      b.Slot().String(),
		QRPayload: issued.QRPayload(),
		IssuedAt:  issued.IssuedAt(),
	}

	uc.afterCommit(ctx, b, result)

	slog.InfoContext(ctx, "booking confirmed",
		"booking_id", b.ID().String(),
		"resort_id", result.ResortID,
		"date", result.Date,
		"slot", result.Slot)

	return result, nil
}

func (uc *reservationUseCaseImpl) newBooking(in ReserveInput) (*booking.Booking, error) {
	resortID, err := booking.NewResortID(in.ResortID)
	if err != nil {
		return nil, err
	}
	date, err := booking.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	slot, err := booking.ParseSlot(in.Slot)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(uc.services, in.UserID, resortID, date, slot)
}

// afterCommit runs best-effort side effects. The booking is durable at this
// point; failures are logged and never surface to the caller.
func (uc *reservationUseCaseImpl) afterCommit(ctx context.Context, b *booking.Booking, result *TicketResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if uc.renderer != nil {
		imageURL, err := uc.renderer.Render(ctx, result.QRPayload)
		if err != nil {
			slog.WarnContext(ctx, "qr render failed", "booking_id", b.ID().String(), "error", err.Error())
		} else {
			result.QRImageURL = imageURL
		}
	}

	invalidateAvailability(ctx, uc.invalidator, b)
	notify(ctx, uc.notifier, shared.EventBookingConfirmed, b)
}

func translateReserveErr(err error) error {
	switch {
	case errs.Is(err, ErrDuplicateBooking):
		return err
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrDuplicateBooking)
	case infra.IsKind(err, infra.KindNoCapacity):
		return errs.Mark(err, ErrNoCapacity)
	}
	slog.Error("reserve failed", "error", err.Error())
	return errs.Mark(err, ErrStoreUnavailable)
}

func invalidateAvailability(ctx context.Context, invalidator AvailabilityInvalidator, b *booking.Booking) {
	if invalidator == nil {
		return
	}
	if err := invalidator.Invalidate(ctx, b.ResortID(), b.Date()); err != nil {
		slog.WarnContext(ctx, "availability cache invalidation failed",
			"resort_id", b.ResortID().String(),
			"date", b.Date().String(),
			"error", err.Error())
	}
}

func notify(ctx context.Context, notifier shared.Notifier, name string, b *booking.Booking) {
	if notifier == nil {
		return
	}
	event := shared.BookingEvent{
		Name:       name,
		BookingID:  b.ID(),
		UserID:     b.UserID(),
		ResortID:   b.ResortID().String(),
		Date:       b.Date().String(),
		Slot:       b.Slot().String(),
		TicketID:   b.TicketID(),
		OccurredAt: time.Now().UTC(),
	}
	if err := notifier.Notify(ctx, event); err != nil {
		slog.WarnContext(ctx, "booking notification failed",
			"event", name,
			"booking_id", b.ID().String(),
			"error", err.Error())
	}
}
