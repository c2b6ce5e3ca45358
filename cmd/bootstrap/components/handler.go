package components

import (
	"go.uber.org/fx"

	"parking-facility/internal/handler"
	"parking-facility/internal/handler/api"
	"parking-facility/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewParkingHandler,
		api.NewSubscriptionHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
