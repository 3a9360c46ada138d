package request

import (
	"decor-rental/internal/domain/inventory"

	"github.com/jinzhu/copier"
)

type ItemRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Category    string   `json:"category" binding:"required,max=100"`
	Description *string  `json:"description,omitempty"`
	PricePerDay float64  `json:"pricePerDay" binding:"gte=0"`
	Quantity    int      `json:"quantity" binding:"gte=0"`
	Images      []string `json:"images,omitempty" binding:"omitempty,dive,required"`
}

func (r *ItemRequest) ToDomain() (inventory.Item, error) {
	var item inventory.Item
	if err := copier.CopyWithOption(&item, r, copier.Option{DeepCopy: true}); err != nil {
		return inventory.Item{}, err
	}
	return item, nil
}
