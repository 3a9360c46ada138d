package queries

import (
	"context"

	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/shared"
)

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/queries/inventory.go -package=queriesmock

type InventoryQueries interface {
	// List filters by category using the catalog matching rules; "" and "All" return everything.
	List(ctx context.Context, category string) ([]ItemView, error)
	Get(ctx context.Context, id string) (*ItemView, error)
	Stats(ctx context.Context) (*inventory.Stats, error)
}

type inventoryQueriesImpl struct {
	reader shared.DatasetReader
}

func NewInventoryQueries(reader shared.DatasetReader) InventoryQueries {
	return &inventoryQueriesImpl{reader: reader}
}

func (q *inventoryQueriesImpl) List(ctx context.Context, category string) ([]ItemView, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	items := inventory.FilterByCategory(ds.Items, category)
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, NewItemView(it))
	}
	return views, nil
}

func (q *inventoryQueriesImpl) Get(ctx context.Context, id string) (*ItemView, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	i := site.IndexOf(ds.Items, id)
	if i < 0 {
		return nil, shared.NotFound(errs.ErrItemNotFound)
	}
	view := NewItemView(ds.Items[i])
	return &view, nil
}

func (q *inventoryQueriesImpl) Stats(ctx context.Context) (*inventory.Stats, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	stats := inventory.Summarize(ds.Items)
	return &stats, nil
}
