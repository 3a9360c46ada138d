package queries

import (
	"context"
	"sort"

	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/shared"
)

type PackageQueries interface {
	List(ctx context.Context, featuredFirst bool) ([]catalog.Package, error)
	Get(ctx context.Context, id string) (*catalog.Package, error)
}

type packageQueriesImpl struct {
	reader shared.DatasetReader
}

func NewPackageQueries(reader shared.DatasetReader) PackageQueries {
	return &packageQueriesImpl{reader: reader}
}

func (q *packageQueriesImpl) List(ctx context.Context, featuredFirst bool) ([]catalog.Package, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	out := append([]catalog.Package{}, ds.Packages...)
	if featuredFirst {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsFeatured && !out[j].IsFeatured
		})
	}
	return out, nil
}

func (q *packageQueriesImpl) Get(ctx context.Context, id string) (*catalog.Package, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	i := site.IndexOf(ds.Packages, id)
	if i < 0 {
		return nil, shared.NotFound(errs.ErrPackageNotFound)
	}
	p := ds.Packages[i]
	return &p, nil
}
