package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"decor-rental/internal/domain/user"
	"decor-rental/internal/handler/httperr"
	"decor-rental/internal/pkg/cookie"
	"decor-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const ctxSessionKey = "session"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

// extractToken prefers the httpOnly cookie and falls back to a bearer header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Access token required")
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("token rejected",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()),
			)
			httperr.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		SetSession(c, session)
		c.Next()
	}
}

// SetSession attaches the authenticated caller to the request.
func SetSession(c *gin.Context, session usecase.Session) {
	c.Set(ctxSessionKey, session)
}

func GetSession(c *gin.Context) (usecase.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return usecase.Session{}, false
	}
	session, ok := v.(usecase.Session)
	return session, ok && session.UserID != ""
}

// RequireRoleAtLeast enforces Editor < Manager < Admin < Super Admin. Use after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !role.AtLeast(minRole) {
			httperr.Abort(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	session, ok := GetSession(c)
	return session.UserID, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	session, ok := GetSession(c)
	return session.Role, ok
}
