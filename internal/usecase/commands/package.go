package commands

import (
	"context"

	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type PackageCommands interface {
	Create(ctx context.Context, p catalog.Package) (*catalog.Package, error)
	Update(ctx context.Context, id string, p catalog.Package) (*catalog.Package, error)
	Delete(ctx context.Context, id string) error
}

type packageCommandsImpl struct {
	store shared.DatasetStore
	clock clock.Clock
}

func NewPackageCommands(store shared.DatasetStore, clk clock.Clock) PackageCommands {
	return &packageCommandsImpl{store: store, clock: clk}
}

func (uc *packageCommandsImpl) Create(ctx context.Context, p catalog.Package) (*catalog.Package, error) {
	if err := p.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	p.ID = uuid.NewString()
	p.CreatedAt = shared.Timestamp(uc.clock.Now())
	if p.Images == nil {
		p.Images = []string{}
	}

	if err := packages.insert(ctx, uc.store, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (uc *packageCommandsImpl) Update(ctx context.Context, id string, p catalog.Package) (*catalog.Package, error) {
	if err := p.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	return packages.replace(ctx, uc.store, id, func(stored catalog.Package) (catalog.Package, error) {
		p.ID = stored.ID
		p.CreatedAt = stored.CreatedAt
		if p.Images == nil {
			p.Images = stored.Images
		}
		return p, nil
	})
}

func (uc *packageCommandsImpl) Delete(ctx context.Context, id string) error {
	return packages.remove(ctx, uc.store, id)
}
