package request

import (
	"decor-rental/internal/domain/booking"
	"decor-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const bookingStatusTag = "booking_status"

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("unexpected binding validator engine")
	}
	return v.RegisterValidation(bookingStatusTag, validateBookingStatus)
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	_, err := booking.ParseStatus(fl.Field().String())
	return err == nil
}
