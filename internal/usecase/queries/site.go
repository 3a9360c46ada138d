package queries

import (
	"context"

	"decor-rental/internal/domain/content"
	"decor-rental/internal/domain/settings"
	"decor-rental/internal/usecase/shared"
)

type SiteQueries interface {
	Content(ctx context.Context) (*content.SiteContent, error)
	Settings(ctx context.Context) (*settings.Settings, error)
}

type siteQueriesImpl struct {
	reader shared.DatasetReader
}

func NewSiteQueries(reader shared.DatasetReader) SiteQueries {
	return &siteQueriesImpl{reader: reader}
}

func (q *siteQueriesImpl) Content(ctx context.Context) (*content.SiteContent, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &ds.Content, nil
}

func (q *siteQueriesImpl) Settings(ctx context.Context) (*settings.Settings, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &ds.Settings, nil
}
