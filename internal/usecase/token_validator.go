package usecase

import (
	"time"

	"decor-rental/internal/domain/user"
	"decor-rental/internal/pkg/jwt"
)

// Session is the authenticated caller as proven by an access token.
type Session struct {
	UserID    string
	Role      user.Role
	ExpiresAt time.Time
}

type TokenValidator interface {
	ValidateToken(tokenString string) (Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken rejects tokens whose role claim is no longer a known role.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Session{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Session{}, err
	}

	return Session{
		UserID:    claims.UserID(),
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
