//go:build unit

package middleware_test

import (
	"log/slog"
	"net/http"
	"testing"

	"decor-rental/internal/domain/user"
	"decor-rental/internal/handler/middleware"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/config"
	"decor-rental/internal/usecase"
	"decor-rental/tests/common/authtest"
	"decor-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	helper := authtest.NewJWTHelper(config.NewTestConfig().JWT)
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(helper.Service(t, clock.NewRealClock())), slog.New(slog.DiscardHandler))

	ok := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	}

	r := gin.New()
	r.GET("/me", mw.RequireAuth(), ok)
	r.GET("/manager", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleManager), ok)
	r.GET("/super", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleSuperAdmin), ok)
	r.GET("/misconfigured", mw.RequireRoleAtLeast(user.RoleEditor), ok)
	return r, helper
}

func TestRequireAuth(t *testing.T) {
	r, helper := newAuthRouter(t)

	t.Run("bearer token sets the user context", func(t *testing.T) {
		token := helper.GenerateToken(t, "u-1", user.RoleEditor)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "u-1", body["id"])
		assert.Equal(t, string(user.RoleEditor), body["role"])
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		token := helper.GenerateToken(t, "u-2", user.RoleAdmin)
		cookies := []*http.Cookie{{Name: "access_token", Value: token}}
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil, cookies, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is a 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token is a 401", func(t *testing.T) {
		token := helper.CreateExpiredToken(t, "u-1", user.RoleAdmin)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("tampered token is a 401", func(t *testing.T) {
		token := helper.GenerateToken(t, "u-1", user.RoleAdmin) + "x"
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	r, helper := newAuthRouter(t)

	cases := []struct {
		name string
		path string
		role user.Role
		want int
	}{
		{name: "editor below manager", path: "/manager", role: user.RoleEditor, want: http.StatusForbidden},
		{name: "manager meets manager", path: "/manager", role: user.RoleManager, want: http.StatusOK},
		{name: "admin above manager", path: "/manager", role: user.RoleAdmin, want: http.StatusOK},
		{name: "admin below super admin", path: "/super", role: user.RoleAdmin, want: http.StatusForbidden},
		{name: "super admin meets super admin", path: "/super", role: user.RoleSuperAdmin, want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := helper.GenerateToken(t, "u-1", tc.role)
			rec := httptest.PerformRequest(t, r, http.MethodGet, tc.path, nil, token)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}

	t.Run("used without RequireAuth is a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/misconfigured", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
