package commands

import (
	"context"

	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/commands/inventory.go -package=commandsmock

type InventoryCommands interface {
	Create(ctx context.Context, item inventory.Item) (*inventory.Item, error)
	Update(ctx context.Context, id string, item inventory.Item) (*inventory.Item, error)
	Delete(ctx context.Context, id string) error
}

type inventoryCommandsImpl struct {
	store shared.DatasetStore
	clock clock.Clock
}

func NewInventoryCommands(store shared.DatasetStore, clk clock.Clock) InventoryCommands {
	return &inventoryCommandsImpl{store: store, clock: clk}
}

func (uc *inventoryCommandsImpl) Create(ctx context.Context, item inventory.Item) (*inventory.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	item.ID = uuid.NewString()
	item.CreatedAt = shared.Timestamp(uc.clock.Now())
	if item.Images == nil {
		item.Images = []string{}
	}

	if err := items.insert(ctx, uc.store, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces every editable field. The stored id and createdAt are kept,
// and so are the stored images when the request carries none.
func (uc *inventoryCommandsImpl) Update(ctx context.Context, id string, item inventory.Item) (*inventory.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	return items.replace(ctx, uc.store, id, func(stored inventory.Item) (inventory.Item, error) {
		item.ID = stored.ID
		item.CreatedAt = stored.CreatedAt
		if item.Images == nil {
			item.Images = stored.Images
		}
		return item, nil
	})
}

func (uc *inventoryCommandsImpl) Delete(ctx context.Context, id string) error {
	return items.remove(ctx, uc.store, id)
}
