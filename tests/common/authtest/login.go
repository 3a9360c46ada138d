//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"decor-rental/tests/common/builder"
	"decor-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

// LoginUser logs in through the real route and returns the access token the
// server put in its cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := builder.NewCredentialsBuilder().WithEmail(email).WithPassword(password).BuildLogin()
	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath, body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, token, "login did not set the access_token cookie")
	require.NotEmpty(t, token.Value)
	return token.Value
}

// LogoutUser logs out with the token cookie and returns the cleared cookie.
func LogoutUser(t *testing.T, router *gin.Engine, token string) *http.Cookie {
	t.Helper()

	cookies := []*http.Cookie{{Name: "access_token", Value: token}}
	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutPath, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	cleared := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, cleared, "logout did not clear the access_token cookie")
	return cleared
}
