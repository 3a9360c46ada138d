//go:build unit || e2e

package builder

import (
	"decor-rental/internal/domain/booking"
	reqdto "decor-rental/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           string
	CustomerName string
	Phone        string
	EventType    string
	EventDate    string
	Location     string
	Status       booking.Status
	TotalAmount  *float64
	Items        []booking.LineItem
	CreatedAt    string
}

func NewBookingBuilder() *BookingBuilder {
	total := 350.0
	return &BookingBuilder{
		ID:           uuid.NewString(),
		CustomerName: "Ama Mensah",
		Phone:        "+233200000000",
		EventType:    "Wedding",
		EventDate:    "2026-06-01",
		Location:     "Accra",
		Status:       booking.StatusPending,
		TotalAmount:  &total,
		Items: []booking.LineItem{
			{Name: "Chiavari chair", Quantity: 50, Price: 5},
			{Name: "Round table", Quantity: 5, Price: 20},
		},
		CreatedAt: "2026-05-01T10:00:00Z",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithTotal(total float64) *BookingBuilder {
	b.TotalAmount = &total
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt string) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *BookingBuilder) BuildDomain() booking.Booking {
	items := make([]booking.LineItem, len(b.Items))
	copy(items, b.Items)
	return booking.Booking{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		EventType:    b.EventType,
		EventDate:    b.EventDate,
		Location:     b.Location,
		Status:       b.Status,
		TotalAmount:  b.TotalAmount,
		Items:        items,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.BookingRequest {
	items := make([]reqdto.LineItemRequest, 0, len(b.Items))
	for _, li := range b.Items {
		items = append(items, reqdto.LineItemRequest{Name: li.Name, Quantity: li.Quantity, Price: li.Price})
	}
	return reqdto.BookingRequest{
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		EventType:    b.EventType,
		EventDate:    b.EventDate,
		Location:     b.Location,
		TotalAmount:  b.TotalAmount,
		Items:        items,
	}
}
