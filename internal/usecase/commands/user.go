package commands

import (
	"context"

	"decor-rental/internal/domain/site"
	"decor-rental/internal/domain/user"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/pkg/password"
	"decor-rental/internal/pkg/patch"
	"decor-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

var ErrSelfDelete = errs.New("users cannot delete their own account")

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput leaves nil fields unchanged.
type UpdateUserInput struct {
	Name     *string
	Role     *string
	Password *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput, actorRole user.Role) (*user.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput, actorRole user.Role) (*user.User, error)
	Delete(ctx context.Context, id string, actorID string, actorRole user.Role) error
}

type userCommandsImpl struct {
	store shared.DatasetStore
	clock clock.Clock
}

func NewUserCommands(store shared.DatasetStore, clk clock.Clock) UserCommands {
	return &userCommandsImpl{store: store, clock: clk}
}

func (uc *userCommandsImpl) Create(ctx context.Context, in CreateUserInput, actorRole user.Role) (*user.User, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, shared.Invalid(err)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, shared.Invalid(err)
	}
	if !actorRole.AtLeast(role) {
		return nil, errs.ErrForbidden
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, shared.Invalid(err)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(uuid.NewString(), in.Name, email, hash, role, shared.Timestamp(uc.clock.Now()))
	if err := u.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	_, err = uc.store.Update(ctx, func(ds *site.Dataset) error {
		if _, taken := ds.FindUserByEmail(u.Email); taken {
			return shared.Invalid(user.ErrEmailTaken)
		}
		ds.Users = append(ds.Users, *u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, id string, in UpdateUserInput, actorRole user.Role) (*user.User, error) {
	var hash *string
	if in.Password != nil {
		pw, err := user.NewPassword(*in.Password)
		if err != nil {
			return nil, shared.Invalid(err)
		}
		h, err := password.HashPassword(pw.Value())
		if err != nil {
			return nil, errs.Wrap(err, "failed to hash password")
		}
		hash = &h
	}
	var role *user.Role
	if in.Role != nil {
		r, err := user.NewRole(*in.Role)
		if err != nil {
			return nil, shared.Invalid(err)
		}
		if !actorRole.AtLeast(r) {
			return nil, errs.ErrForbidden
		}
		role = &r
	}

	var updated user.User
	_, err := uc.store.Update(ctx, func(ds *site.Dataset) error {
		i := site.IndexOf(ds.Users, id)
		if i < 0 {
			return shared.NotFound(errs.ErrUserNotFound)
		}
		u := ds.Users[i]
		if !actorRole.AtLeast(u.Role) {
			return errs.ErrForbidden
		}
		if role != nil && u.Role == user.RoleSuperAdmin && *role != user.RoleSuperAdmin &&
			user.CountRole(ds.Users, user.RoleSuperAdmin) == 1 {
			return shared.Invalid(user.ErrLastSuperAdmin)
		}
		u.Name = patch.Text(in.Name, u.Name)
		u.Role = patch.Coalesce(role, u.Role)
		if hash != nil {
			u.PasswordHash = *hash
			u.IsFirstLogin = true
		}
		if err := u.Validate(); err != nil {
			return shared.Invalid(err)
		}
		ds.Users[i] = u
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user. The last Super Admin stays, and nobody removes an account ranked above their own.
func (uc *userCommandsImpl) Delete(ctx context.Context, id string, actorID string, actorRole user.Role) error {
	if id == actorID {
		return shared.Invalid(ErrSelfDelete)
	}
	_, err := uc.store.Update(ctx, func(ds *site.Dataset) error {
		i := site.IndexOf(ds.Users, id)
		if i < 0 {
			return shared.NotFound(errs.ErrUserNotFound)
		}
		if ds.Users[i].Role == user.RoleSuperAdmin && user.CountRole(ds.Users, user.RoleSuperAdmin) == 1 {
			return shared.Invalid(user.ErrLastSuperAdmin)
		}
		if !actorRole.AtLeast(ds.Users[i].Role) {
			return errs.ErrForbidden
		}
		ds.Users, _ = site.Remove(ds.Users, id)
		return nil
	})
	return err
}
