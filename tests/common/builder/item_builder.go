//go:build unit || e2e

package builder

import (
	"decor-rental/internal/domain/inventory"
	reqdto "decor-rental/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          string
	Name        string
	Category    string
	PricePerDay float64
	Quantity    int
	Images      []string
	CreatedAt   string
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.NewString(),
		Name:        "Chiavari chair",
		Category:    "Chairs",
		PricePerDay: 5,
		Quantity:    120,
		Images:      []string{"/images/chair.jpg"},
		CreatedAt:   "2026-01-01T00:00:00Z",
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithCategory(category string) *ItemBuilder {
	b.Category = category
	return b
}

func (b *ItemBuilder) WithQuantity(q int) *ItemBuilder {
	b.Quantity = q
	return b
}

func (b *ItemBuilder) BuildDomain() inventory.Item {
	return inventory.Item{
		ID:          b.ID,
		Name:        b.Name,
		Category:    b.Category,
		PricePerDay: b.PricePerDay,
		Quantity:    b.Quantity,
		Images:      append([]string(nil), b.Images...),
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ItemBuilder) BuildDTO() reqdto.ItemRequest {
	return reqdto.ItemRequest{
		Name:        b.Name,
		Category:    b.Category,
		PricePerDay: b.PricePerDay,
		Quantity:    b.Quantity,
		Images:      append([]string(nil), b.Images...),
	}
}
