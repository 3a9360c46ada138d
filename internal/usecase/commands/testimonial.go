package commands

import (
	"context"

	"decor-rental/internal/domain/testimonial"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type TestimonialCommands interface {
	Create(ctx context.Context, t testimonial.Testimonial) (*testimonial.Testimonial, error)
	Update(ctx context.Context, id string, t testimonial.Testimonial) (*testimonial.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type testimonialCommandsImpl struct {
	store shared.DatasetStore
	clock clock.Clock
}

func NewTestimonialCommands(store shared.DatasetStore, clk clock.Clock) TestimonialCommands {
	return &testimonialCommandsImpl{store: store, clock: clk}
}

func (uc *testimonialCommandsImpl) Create(ctx context.Context, t testimonial.Testimonial) (*testimonial.Testimonial, error) {
	if err := t.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	t.ID = uuid.NewString()
	t.CreatedAt = shared.Timestamp(uc.clock.Now())

	if err := testimonials.insert(ctx, uc.store, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (uc *testimonialCommandsImpl) Update(ctx context.Context, id string, t testimonial.Testimonial) (*testimonial.Testimonial, error) {
	if err := t.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	return testimonials.replace(ctx, uc.store, id, func(stored testimonial.Testimonial) (testimonial.Testimonial, error) {
		t.ID = stored.ID
		t.CreatedAt = stored.CreatedAt
		return t, nil
	})
}

func (uc *testimonialCommandsImpl) Delete(ctx context.Context, id string) error {
	return testimonials.remove(ctx, uc.store, id)
}
