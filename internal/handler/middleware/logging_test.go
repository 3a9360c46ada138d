//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"decor-rental/internal/domain/user"
	"decor-rental/internal/handler/middleware"
	"decor-rental/internal/usecase"
	"decor-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(level slog.Level) (*gin.Engine, *bytes.Buffer) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level}))

	r := gin.New()
	r.Use(middleware.LoggingMiddleware(logger))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/items/:id", func(c *gin.Context) {
		middleware.SetSession(c, usecase.Session{UserID: "u-9", Role: user.RoleManager})
		c.JSON(http.StatusNotFound, gin.H{"id": c.Param("id")})
	})
	return r, &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines[len(lines)-1])
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("generates a request id and logs the route", func(t *testing.T) {
		r, buf := newLoggedRouter(slog.LevelInfo)
		rec := httptest.Perform(r, http.MethodGet, "/items/42", nil)

		id := rec.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)

		entry := lastLine(t, buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, id, entry["request_id"])
		assert.Equal(t, "/items/:id", entry["route"])
		assert.Equal(t, "u-9", entry["user_id"])
		assert.Equal(t, "Manager", entry["role"])
		assert.EqualValues(t, http.StatusNotFound, entry["status_code"])
	})

	t.Run("reuses an inbound request id", func(t *testing.T) {
		r, buf := newLoggedRouter(slog.LevelInfo)
		rec := httptest.Perform(r, http.MethodGet, "/items/1", nil,
			httptest.WithHeader(middleware.RequestIDHeader, "trace-abc"))

		assert.Equal(t, "trace-abc", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "trace-abc", lastLine(t, buf)["request_id"])
	})

	t.Run("replaces an oversized inbound request id", func(t *testing.T) {
		r, _ := newLoggedRouter(slog.LevelInfo)
		huge := strings.Repeat("x", 500)
		rec := httptest.Perform(r, http.MethodGet, "/items/1", nil,
			httptest.WithHeader(middleware.RequestIDHeader, huge))

		assert.NotEqual(t, huge, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("health probes stay below info", func(t *testing.T) {
		r, buf := newLoggedRouter(slog.LevelInfo)
		rec := httptest.Perform(r, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, buf.String())
	})
}
