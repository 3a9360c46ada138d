package bootstrap

import (
	"decor-rental/internal/infra/metrics"
	"decor-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(shared.EventRecorder)),
		),
	),
)
