package commands

import (
	"context"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type BookingCommands interface {
	// Submit records a booking request from the public site. It always starts Pending.
	Submit(ctx context.Context, b booking.Booking) (*booking.Booking, error)
	Update(ctx context.Context, id string, b booking.Booking) (*booking.Booking, error)
	ChangeStatus(ctx context.Context, id string, status booking.Status) (*booking.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingCommandsImpl struct {
	store  shared.DatasetStore
	clock  clock.Clock
	events shared.EventRecorder
}

func NewBookingCommands(store shared.DatasetStore, clk clock.Clock, events shared.EventRecorder) BookingCommands {
	return &bookingCommandsImpl{store: store, clock: clk, events: events}
}

func (uc *bookingCommandsImpl) Submit(ctx context.Context, b booking.Booking) (*booking.Booking, error) {
	b.Status = booking.StatusPending
	if err := b.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	b.ID = uuid.NewString()
	b.CreatedAt = shared.Timestamp(uc.clock.Now())

	if err := bookings.insert(ctx, uc.store, b); err != nil {
		return nil, err
	}
	uc.events.BookingSubmitted(b.Status.String())
	return &b, nil
}

func (uc *bookingCommandsImpl) Update(ctx context.Context, id string, b booking.Booking) (*booking.Booking, error) {
	if err := b.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	return bookings.replace(ctx, uc.store, id, func(stored booking.Booking) (booking.Booking, error) {
		b.ID = stored.ID
		b.CreatedAt = stored.CreatedAt
		return b, nil
	})
}

func (uc *bookingCommandsImpl) ChangeStatus(ctx context.Context, id string, status booking.Status) (*booking.Booking, error) {
	updated, err := bookings.replace(ctx, uc.store, id, func(stored booking.Booking) (booking.Booking, error) {
		next, err := stored.WithStatus(status)
		if err != nil {
			return booking.Booking{}, shared.Invalid(err)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	uc.events.BookingStatusChanged(status.String())
	return updated, nil
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, id string) error {
	return bookings.remove(ctx, uc.store, id)
}
