package user

import (
	"strings"
)

// User is a back office account. PasswordHash is persisted with the dataset
// but never leaves the API boundary.
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"passwordHash"`
	Role         Role    `json:"role"`
	IsFirstLogin bool    `json:"isFirstLogin"`
	LastLogin    *string `json:"lastLogin,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

func NewUser(id, name string, email Email, passwordHash string, role Role, createdAt string) *User {
	return &User{
		ID:           id,
		Name:         strings.TrimSpace(name),
		Email:        email.Value(),
		PasswordHash: passwordHash,
		Role:         role,
		IsFirstLogin: true,
		CreatedAt:    createdAt,
	}
}

func (u User) EntityID() string { return u.ID }

func (u User) HasEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if _, err := NewEmail(u.Email); err != nil {
		return err
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}

// CountRole returns how many users hold exactly the given role.
func CountRole(users []User, role Role) int {
	n := 0
	for _, u := range users {
		if u.Role == role {
			n++
		}
	}
	return n
}
