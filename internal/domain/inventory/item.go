package inventory

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("item name is required")
	ErrEmptyCategory    = errors.New("item category is required")
	ErrNegativePrice    = errors.New("price per day cannot be negative")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

const PlaceholderImage = "/images/placeholder.jpg"

type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description *string  `json:"description,omitempty"`
	PricePerDay float64  `json:"pricePerDay"`
	Quantity    int      `json:"quantity"`
	Images      []string `json:"images"`
	CreatedAt   string   `json:"createdAt"`
}

func (i Item) EntityID() string { return i.ID }

func (i Item) PrimaryImage() string {
	if len(i.Images) == 0 {
		return PlaceholderImage
	}
	return i.Images[0]
}

func (i Item) StockStatus() StockStatus {
	return Classify(i.Quantity)
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(i.Category) == "" {
		return ErrEmptyCategory
	}
	if i.PricePerDay < 0 {
		return ErrNegativePrice
	}
	if i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
