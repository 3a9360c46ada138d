package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Record errors
	ErrNotFound            = errors.New("record not found")
	ErrItemNotFound        = errors.New("inventory item not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrUserNotFound        = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Backup errors
	ErrInvalidBackup = errors.New("invalid backup file")

	// Authorization errors
	ErrForbidden = errors.New("insufficient role")

	// Operation errors
	ErrStoreOperationFailed = errors.New("datastore operation failed")
)
