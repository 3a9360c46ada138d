package password

import (
	"decor-rental/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMismatch        = errs.New("password does not match")
	ErrInvalidPassword = errs.New("invalid password")
)

// MaxLength is the bcrypt input limit; longer passwords are rejected rather than truncated.
const MaxLength = 72

// Cost is a variable so tests can lower it.
var Cost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" || len(password) > MaxLength {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", errs.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

// ComparePassword returns ErrMismatch for a wrong password and a wrapped
// error when the stored hash itself is unusable.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "stored password hash is unusable")
	}
}
