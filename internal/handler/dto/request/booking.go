package request

import (
	"decor-rental/internal/domain/booking"

	"github.com/jinzhu/copier"
)

type LineItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gte=1"`
	Price    float64 `json:"price" binding:"gte=0"`
}

// BookingRequest is the public booking form. Status is never accepted from it.
type BookingRequest struct {
	CustomerName    string            `json:"customerName" binding:"required,max=200"`
	Phone           string            `json:"phone" binding:"required,max=50"`
	Email           *string           `json:"email,omitempty" binding:"omitempty,email"`
	EventType       string            `json:"eventType" binding:"max=100"`
	EventDate       string            `json:"eventDate" binding:"required"`
	ReturnDate      *string           `json:"returnDate,omitempty"`
	Location        string            `json:"location" binding:"max=300"`
	TotalAmount     *float64          `json:"totalAmount,omitempty" binding:"omitempty,gte=0"`
	Items           []LineItemRequest `json:"items,omitempty" binding:"omitempty,dive"`
	SelectedPackage *string           `json:"selectedPackage,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
}

func (r *BookingRequest) ToDomain() (booking.Booking, error) {
	var b booking.Booking
	if err := copier.CopyWithOption(&b, r, copier.Option{DeepCopy: true}); err != nil {
		return booking.Booking{}, err
	}
	return b, nil
}

// UpdateBookingRequest is the admin full-replace form.
type UpdateBookingRequest struct {
	BookingRequest
	Status string `json:"status" binding:"required,booking_status"`
}

func (r *UpdateBookingRequest) ToDomain() (booking.Booking, error) {
	b, err := r.BookingRequest.ToDomain()
	if err != nil {
		return booking.Booking{}, err
	}
	b.Status, err = booking.ParseStatus(r.Status)
	if err != nil {
		return booking.Booking{}, err
	}
	return b, nil
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

func (r *BookingStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}
