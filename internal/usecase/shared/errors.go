package shared

import (
	"time"

	"decor-rental/internal/pkg/errs"
)

// NotFound marks kind so callers can match either the specific or the generic not-found error.
func NotFound(kind error) error {
	return errs.Mark(kind, errs.ErrNotFound)
}

// Invalid marks a domain validation failure.
func Invalid(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}

// Timestamp is the createdAt format of every stored record.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
