package booking

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrMissingCustomer  = errors.New("customer name is required")
	ErrMissingPhone     = errors.New("phone is required")
	ErrInvalidLineItem  = errors.New("line item requires a name, quantity >= 1 and price >= 0")
	ErrNegativeAmount   = errors.New("booking amount cannot be negative")
	ErrMissingEventDate = errors.New("event date is required")
)

type LineItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (li LineItem) Total() float64 {
	return float64(li.Quantity) * li.Price
}

func (li LineItem) Validate() error {
	if strings.TrimSpace(li.Name) == "" || li.Quantity < 1 || li.Price < 0 {
		return ErrInvalidLineItem
	}
	return nil
}

// Booking keeps dates as strings so that a malformed value in a stored record never
// prevents the rest of the dataset from loading.
type Booking struct {
	ID              string     `json:"id"`
	CustomerName    string     `json:"customerName"`
	Phone           string     `json:"phone"`
	Email           *string    `json:"email,omitempty"`
	EventType       string     `json:"eventType"`
	EventDate       string     `json:"eventDate"`
	ReturnDate      *string    `json:"returnDate,omitempty"`
	Location        string     `json:"location"`
	Status          Status     `json:"status"`
	TotalAmount     *float64   `json:"totalAmount,omitempty"`
	TotalCost       *float64   `json:"totalCost,omitempty"`
	Items           []LineItem `json:"items,omitempty"`
	SelectedPackage *string    `json:"selectedPackage,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       string     `json:"createdAt"`
}

func (b Booking) EntityID() string { return b.ID }

// Amount reconciles the two stored representations: totalAmount wins, totalCost is the fallback.
func (b Booking) Amount() float64 {
	switch {
	case b.TotalAmount != nil:
		return *b.TotalAmount
	case b.TotalCost != nil:
		return *b.TotalCost
	default:
		return 0
	}
}

func (b Booking) ItemsTotal() float64 {
	var sum float64
	for _, li := range b.Items {
		sum += li.Total()
	}
	return sum
}

// TotalMatchesItems reports whether totalAmount equals the line item sum. It is not enforced on write.
func (b Booking) TotalMatchesItems() bool {
	if b.TotalAmount == nil || len(b.Items) == 0 {
		return true
	}
	return math.Abs(*b.TotalAmount-b.ItemsTotal()) < 0.005
}

// RevenueDate is the raw date used for revenue bucketing: createdAt, falling back to the event date.
func (b Booking) RevenueDate() string {
	if strings.TrimSpace(b.CreatedAt) != "" {
		return b.CreatedAt
	}
	return b.EventDate
}

func (b Booking) Validate() error {
	if strings.TrimSpace(b.CustomerName) == "" {
		return ErrMissingCustomer
	}
	if strings.TrimSpace(b.Phone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(b.EventDate) == "" {
		return ErrMissingEventDate
	}
	if !b.Status.IsValid() {
		return ErrInvalidStatus
	}
	if (b.TotalAmount != nil && *b.TotalAmount < 0) || (b.TotalCost != nil && *b.TotalCost < 0) {
		return ErrNegativeAmount
	}
	for _, li := range b.Items {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// WithStatus returns a copy carrying the new status.
func (b Booking) WithStatus(s Status) (Booking, error) {
	if !s.IsValid() {
		return b, ErrInvalidStatus
	}
	b.Status = s
	return b, nil
}
