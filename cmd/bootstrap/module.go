package bootstrap

import (
	"go.uber.org/fx"

	"parking-facility/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	components.FacilityModule,
	components.UseCaseModule,
	components.HandlerModule,
)
