// Package cookie manages the httpOnly cookie that carries the access token.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"decor-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

func SetTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	write(c, cfg, accessToken, int(expiry.Seconds()))
}

// ClearTokenCookie expires the cookie in the browser. The token itself stays
// valid until its own expiry.
func ClearTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	sameSite := parseSameSite(cfg.SameSite)
	c.SetSameSite(sameSite)
	c.SetCookie(
		AccessTokenCookieName,
		value,
		maxAge,
		"/",
		cfg.Domain,
		// browsers drop SameSite=None cookies that are not Secure
		cfg.Secure || sameSite == http.SameSiteNoneMode,
		true,
	)
}

func parseSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(sameSite)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
