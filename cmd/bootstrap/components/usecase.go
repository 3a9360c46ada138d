package components

import (
	"decor-rental/internal/domain/sales"
	"decor-rental/internal/pkg/config"
	"decor-rental/internal/usecase"
	"decor-rental/internal/usecase/commands"
	"decor-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewSalesOptions,
)

// NewSalesOptions resolves the confirmed-status set and reporting timezone from config.
func NewSalesOptions(cfg config.Config) (sales.Options, error) {
	loc, err := cfg.Sales.Location()
	if err != nil {
		return sales.Options{}, err
	}
	confirmed, err := sales.ParseStatusSet(cfg.Sales.ConfirmedStatuses)
	if err != nil {
		return sales.Options{}, err
	}
	return sales.Options{Confirmed: confirmed, Location: loc}, nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewInventoryCommands,
		commands.NewBookingCommands,
		commands.NewPackageCommands,
		commands.NewMessageCommands,
		commands.NewTestimonialCommands,
		commands.NewSiteCommands,
		commands.NewUserCommands,
		commands.NewBackupCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewInventoryQueries,
		queries.NewBookingQueries,
		queries.NewPackageQueries,
		queries.NewMessageQueries,
		queries.NewTestimonialQueries,
		queries.NewSiteQueries,
		queries.NewReportQueries,
		queries.NewBackupQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
