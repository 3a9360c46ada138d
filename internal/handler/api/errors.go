package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"decor-rental/internal/handler/httperr"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var notFoundMessages = []struct {
	kind error
	msg  string
}{
	{errs.ErrItemNotFound, "Inventory item not found"},
	{errs.ErrBookingNotFound, "Booking not found"},
	{errs.ErrPackageNotFound, "Package not found"},
	{errs.ErrMessageNotFound, "Message not found"},
	{errs.ErrTestimonialNotFound, "Testimonial not found"},
	{errs.ErrUserNotFound, "User not found"},
}

// respondError maps usecase errors onto HTTP statuses. Anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFoundMessage(err), nil)
	case errs.Is(err, errs.ErrInvalidBackup):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid backup file", err.Error())
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	default:
		slog.Error("request failed",
			slog.String("path", c.FullPath()),
			slog.Any("stack", errs.StackLines(err, 12)),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func notFoundMessage(err error) string {
	for _, nf := range notFoundMessages {
		if errs.Is(err, nf.kind) {
			return nf.msg
		}
	}
	return "Resource not found"
}

// respondBindError reports binding failures with the offending fields as detail.
func respondBindError(c *gin.Context, err error) {
	var detail any
	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", detail)
}
