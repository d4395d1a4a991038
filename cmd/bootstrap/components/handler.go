package components

import (
	"lift-reservation/internal/handler"
	"lift-reservation/internal/handler/api"
	"lift-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(r *api.ReservationHandler, a *api.AvailabilityHandler, ad *api.AdminHandler) handler.Handlers {
	return handler.Handlers{
		Reservation:  r,
		Availability: a,
		Admin:        ad,
	}
}
