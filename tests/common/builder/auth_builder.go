//go:build unit || e2e

package builder

import (
	reqdto "decor-rental/internal/handler/dto/request"
)

const DefaultPassword = "password123"

// CredentialsBuilder builds login and password-change payloads.
type CredentialsBuilder struct {
	Email       string
	Password    string
	NewPassword string
}

func NewCredentialsBuilder() *CredentialsBuilder {
	return &CredentialsBuilder{
		Email:       "test@example.com",
		Password:    DefaultPassword,
		NewPassword: "new-password-1",
	}
}

func (b *CredentialsBuilder) WithEmail(email string) *CredentialsBuilder {
	b.Email = email
	return b
}

func (b *CredentialsBuilder) WithPassword(password string) *CredentialsBuilder {
	b.Password = password
	return b
}

func (b *CredentialsBuilder) WithNewPassword(password string) *CredentialsBuilder {
	b.NewPassword = password
	return b
}

func (b *CredentialsBuilder) BuildLogin() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *CredentialsBuilder) BuildChangePassword() reqdto.ChangePasswordRequest {
	return reqdto.ChangePasswordRequest{
		CurrentPassword: b.Password,
		NewPassword:     b.NewPassword,
	}
}
