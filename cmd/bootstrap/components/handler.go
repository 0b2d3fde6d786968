package components

import (
	"court-booking/internal/handler"
	"court-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCourtHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
