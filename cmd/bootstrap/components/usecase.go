package components

import (
	"boat-quotes/internal/pkg/clock"
	"boat-quotes/internal/usecase/commands"
	"boat-quotes/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInquiryCommands,
		commands.NewDraftCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInquiryQueries,
		queries.NewPricingQueries,
	),
)
