package bootstrap

import (
	"log/slog"

	"decor-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig prints the effective non-secret settings once at startup.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("site", cfg.Site.Name),
		slog.String("port", cfg.Server.Port),
		slog.String("datastore_driver", cfg.Datastore.Driver),
		slog.Int64("max_upload_bytes", cfg.Server.MaxUploadSize),
		slog.String("confirmed_statuses", cfg.Sales.ConfirmedStatuses),
		slog.String("sales_timezone", cfg.Sales.TimeZone),
		slog.String("log_level", cfg.Log.Level),
	)
}
