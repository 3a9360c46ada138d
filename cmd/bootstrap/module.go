package bootstrap

import (
	"decor-rental/cmd/bootstrap/components"
	"decor-rental/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.Provide(clock.NewRealClock),
	MetricsModule,
	DatastoreModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
