//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"decor-rental/internal/domain/user"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/config"
	"decor-rental/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T, clk clock.Clock) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration, clk)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	token, err := h.Service(t, clock.NewRealClock()).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token from a clock set far enough in the past that it has already expired.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-48 * time.Hour))
	token, err := h.Service(t, past).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
