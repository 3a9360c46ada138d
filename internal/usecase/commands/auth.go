package commands

import (
	"context"
	"log/slog"

	"decor-rental/internal/domain/site"
	"decor-rental/internal/domain/user"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/pkg/jwt"
	"decor-rental/internal/pkg/password"
	"decor-rental/internal/usecase/shared"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrPasswordUnchanged    = errs.New("new password must differ from the current one")
)

type LoginResult struct {
	User        user.User
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, pw string) (*LoginResult, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

type authCommandsImpl struct {
	store      shared.DatasetStore
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(store shared.DatasetStore, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		store:      store,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if pw == "" {
		return nil, ErrAuthenticationFailed
	}

	ds, err := a.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	u, ok := ds.FindUserByEmail(addr.Value())
	if !ok {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(u.PasswordHash, pw); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	result := &LoginResult{User: *u, AccessToken: token}
	now := shared.Timestamp(a.clock.Now())
	_, err = a.store.Update(ctx, func(ds *site.Dataset) error {
		if i := site.IndexOf(ds.Users, u.ID); i >= 0 {
			ds.Users[i].LastLogin = &now
		}
		return nil
	})
	if err != nil {
		// login succeeded; only the lastLogin stamp is lost
		a.logger.Warn("failed to update last login", "user_id", u.ID, "error", err.Error())
	} else {
		result.User.LastLogin = &now
	}
	return result, nil
}

// ChangePassword verifies the current password and clears the first-login flag.
func (a *authCommandsImpl) ChangePassword(ctx context.Context, userID, current, next string) error {
	pw, err := user.NewPassword(next)
	if err != nil {
		return shared.Invalid(err)
	}
	if current == next {
		return shared.Invalid(ErrPasswordUnchanged)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	_, err = a.store.Update(ctx, func(ds *site.Dataset) error {
		i := site.IndexOf(ds.Users, userID)
		if i < 0 {
			return shared.NotFound(errs.ErrUserNotFound)
		}
		if err := password.ComparePassword(ds.Users[i].PasswordHash, current); err != nil {
			return ErrInvalidCredentials
		}
		ds.Users[i].PasswordHash = hash
		ds.Users[i].IsFirstLogin = false
		return nil
	})
	return err
}
