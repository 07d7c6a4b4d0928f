package components

import (
	"aerotrav/internal/domain/booking"
	"aerotrav/internal/pkg/clock"
	"aerotrav/internal/usecase"
	"aerotrav/internal/usecase/commands"
	"aerotrav/internal/usecase/queries"

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
	booking.NewReferenceGenerator,
	commands.NewActivityRecorder,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPreferenceCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPreferenceQueries,
		queries.NewRecommendationQueries,
		queries.NewCartQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
