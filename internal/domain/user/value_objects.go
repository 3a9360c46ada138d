package user

import (
	"log/slog"
	"net/mail"
	"strings"

	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/pkg/password"
)

const MinPasswordLength = 8

var (
	ErrInvalidEmail    = errs.New("invalid email format")
	ErrInvalidRole     = errs.New("invalid role")
	ErrPasswordTooWeak = errs.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errs.New("password must be at most 72 bytes long")
	ErrEmptyName       = errs.New("user name is required")
	ErrEmailTaken      = errs.New("email already in use")
	ErrLastSuperAdmin  = errs.New("the last super admin cannot be removed")
)

// Email is a bare, lower-cased address. Display names ("Ann <a@b.co>") are rejected.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return Email{}, ErrInvalidEmail
	}
	at := strings.LastIndexByte(s, '@')
	if !strings.Contains(s[at+1:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

// Password is a plaintext candidate that passed the length policy. It never
// prints or logs its value.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len([]rune(s)) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > password.MaxLength {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

func (p Password) String() string {
	return "[redacted]"
}

func (p Password) LogValue() slog.Value {
	return slog.StringValue("[redacted]")
}
