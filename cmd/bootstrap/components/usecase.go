package components

import (
	"time"

	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/domain/ticket"
	"lift-reservation/internal/infra/qr"
	"lift-reservation/internal/pkg/clock"
	"lift-reservation/internal/pkg/config"
	"lift-reservation/internal/usecase"
	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/queries"
	"lift-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewResortLocation,
	NewCapacityPolicy,
	fx.Annotate(
		NewTicketIssuer,
		fx.As(new(commands.TicketIssuer), new(queries.TicketVerifier)),
	),
	NewQRRenderer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewReservationCommands,
		commands.NewCancellationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewTicketQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewResortLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}

func NewCapacityPolicy(cfg config.Config) (*capacity.Policy, error) {
	overrides, err := cfg.Booking.ParseCapacityOverrides()
	if err != nil {
		return nil, err
	}
	return capacity.NewPolicy(cfg.Booking.DefaultCapacity, overrides)
}

func NewTicketIssuer(cfg config.Config, clk clock.Clock) (*ticket.Issuer, error) {
	return ticket.NewIssuer(cfg.Ticket.SigningKey, clk)
}

// NewQRRenderer returns nil when no rendering service is configured;
// tickets then carry only the payload.
func NewQRRenderer(cfg config.Config) (commands.QRRenderer, error) {
	if cfg.Ticket.QRRenderURL == "" {
		return nil, nil
	}
	return qr.NewURLRenderer(cfg.Ticket.QRRenderURL, cfg.Ticket.QRImageSizePx)
}

type reservationParams struct {
	fx.In

	UoW         shared.UnitOfWork
	Issuer      commands.TicketIssuer
	Policy      *capacity.Policy
	Clock       clock.Clock
	Location    *time.Location
	Renderer    commands.QRRenderer
	Notifier    shared.Notifier
	Invalidator commands.AvailabilityInvalidator
}

func NewReservationCommands(p reservationParams) commands.ReservationCommands {
	return commands.NewReservationUseCase(commands.ReservationDeps{
		UoW:         p.UoW,
		Issuer:      p.Issuer,
		Policy:      p.Policy,
		Clock:       p.Clock,
		Location:    p.Location,
		Renderer:    p.Renderer,
		Notifier:    p.Notifier,
		Invalidator: p.Invalidator,
	})
}
