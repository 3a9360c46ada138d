package commands

import (
	"context"

	"decor-rental/internal/domain/message"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessageCommands interface {
	Submit(ctx context.Context, m message.Message) (*message.Message, error)
	MarkRead(ctx context.Context, id string) (*message.Message, error)
	Delete(ctx context.Context, id string) error
}

type messageCommandsImpl struct {
	store shared.DatasetStore
	clock clock.Clock
}

func NewMessageCommands(store shared.DatasetStore, clk clock.Clock) MessageCommands {
	return &messageCommandsImpl{store: store, clock: clk}
}

func (uc *messageCommandsImpl) Submit(ctx context.Context, m message.Message) (*message.Message, error) {
	if err := m.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	m.ID = uuid.NewString()
	m.CreatedAt = shared.Timestamp(uc.clock.Now())
	m.IsRead = false

	_, err := uc.store.Update(ctx, func(ds *site.Dataset) error {
		ds.Messages = append(ds.Messages, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkRead is idempotent: an already read message is returned without a write.
func (uc *messageCommandsImpl) MarkRead(ctx context.Context, id string) (*message.Message, error) {
	ds, err := uc.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	i := site.IndexOf(ds.Messages, id)
	if i < 0 {
		return nil, shared.NotFound(errs.ErrMessageNotFound)
	}
	if ds.Messages[i].IsRead {
		m := ds.Messages[i]
		return &m, nil
	}

	var updated message.Message
	_, err = uc.store.Update(ctx, func(ds *site.Dataset) error {
		i := site.IndexOf(ds.Messages, id)
		if i < 0 {
			return shared.NotFound(errs.ErrMessageNotFound)
		}
		ds.Messages[i].MarkRead()
		updated = ds.Messages[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *messageCommandsImpl) Delete(ctx context.Context, id string) error {
	_, err := uc.store.Update(ctx, func(ds *site.Dataset) error {
		var ok bool
		ds.Messages, ok = site.Remove(ds.Messages, id)
		if !ok {
			return shared.NotFound(errs.ErrMessageNotFound)
		}
		return nil
	})
	return err
}
