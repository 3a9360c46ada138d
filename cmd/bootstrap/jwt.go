package bootstrap

import (
	"time"

	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/config"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	if duration <= 0 {
		return nil, errs.Newf("JWT_DURATION must be positive, got %s", duration)
	}
	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
