//go:build unit || e2e

package builder

import (
	"decor-rental/internal/domain/user"
	"decor-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleAdmin),
		CreatedAt:    "2026-01-01T00:00:00Z",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.ID, u.Name, email, u.PasswordHash, role, u.CreatedAt), nil
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         user.Role(u.Role),
		IsFirstLogin: true,
		CreatedAt:    u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}
