package commands

import (
	"context"

	"decor-rental/internal/domain/content"
	"decor-rental/internal/domain/settings"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/usecase/shared"
)

type SiteCommands interface {
	ReplaceContent(ctx context.Context, c content.SiteContent) (*content.SiteContent, error)
	ReplaceSettings(ctx context.Context, s settings.Settings) (*settings.Settings, error)
}

type siteCommandsImpl struct {
	store shared.DatasetStore
}

func NewSiteCommands(store shared.DatasetStore) SiteCommands {
	return &siteCommandsImpl{store: store}
}

func (uc *siteCommandsImpl) ReplaceContent(ctx context.Context, c content.SiteContent) (*content.SiteContent, error) {
	_, err := uc.store.Update(ctx, func(ds *site.Dataset) error {
		ds.Content = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (uc *siteCommandsImpl) ReplaceSettings(ctx context.Context, s settings.Settings) (*settings.Settings, error) {
	if err := s.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	_, err := uc.store.Update(ctx, func(ds *site.Dataset) error {
		ds.Settings = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
