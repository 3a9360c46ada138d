//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"decor-rental/internal/pkg/config"
	"decor-rental/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(c *gin.Context)) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	fn(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSetTokenCookie(t *testing.T) {
	t.Run("lax by default", func(t *testing.T) {
		got := record(t, func(c *gin.Context) {
			cookie.SetTokenCookie(c, config.CookieConfig{}, "tok", time.Hour)
		})
		assert.Equal(t, cookie.AccessTokenCookieName, got.Name)
		assert.Equal(t, "tok", got.Value)
		assert.Equal(t, 3600, got.MaxAge)
		assert.True(t, got.HttpOnly)
		assert.False(t, got.Secure)
		assert.Equal(t, http.SameSiteLaxMode, got.SameSite)
	})

	t.Run("same site none forces secure", func(t *testing.T) {
		got := record(t, func(c *gin.Context) {
			cookie.SetTokenCookie(c, config.CookieConfig{SameSite: " None "}, "tok", time.Hour)
		})
		assert.Equal(t, http.SameSiteNoneMode, got.SameSite)
		assert.True(t, got.Secure)
	})

	t.Run("strict", func(t *testing.T) {
		got := record(t, func(c *gin.Context) {
			cookie.SetTokenCookie(c, config.CookieConfig{SameSite: "strict", Secure: true}, "tok", time.Hour)
		})
		assert.Equal(t, http.SameSiteStrictMode, got.SameSite)
		assert.True(t, got.Secure)
	})
}

func TestClearTokenCookie(t *testing.T) {
	got := record(t, func(c *gin.Context) {
		cookie.ClearTokenCookie(c, config.CookieConfig{})
	})
	assert.Empty(t, got.Value)
	assert.Less(t, got.MaxAge, 0)
}
