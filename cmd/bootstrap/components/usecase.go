package components

import (
	"go.uber.org/fx"

	"parking-facility/internal/pkg/clock"
	"parking-facility/internal/usecase"
	"parking-facility/internal/usecase/commands"
	"parking-facility/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewParkingCommands,
		commands.NewSubscriptionCommands,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStatusQueries,
		queries.NewReportQueries,
		queries.NewSubscriptionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
