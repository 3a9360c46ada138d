package queries

import (
	"context"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type BookingQueries interface {
	// List returns bookings newest first, optionally restricted to one status.
	List(ctx context.Context, status *booking.Status) ([]booking.Booking, error)
	Get(ctx context.Context, id string) (*booking.Booking, error)
}

type bookingQueriesImpl struct {
	reader shared.DatasetReader
}

func NewBookingQueries(reader shared.DatasetReader) BookingQueries {
	return &bookingQueriesImpl{reader: reader}
}

func (q *bookingQueriesImpl) List(ctx context.Context, status *booking.Status) ([]booking.Booking, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]booking.Booking, 0, len(ds.Bookings))
	for _, b := range ds.Bookings {
		if status == nil || b.Status == *status {
			out = append(out, b)
		}
	}
	sortNewestFirst(out, booking.Booking.RevenueDate)
	return out, nil
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id string) (*booking.Booking, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	i := site.IndexOf(ds.Bookings, id)
	if i < 0 {
		return nil, shared.NotFound(errs.ErrBookingNotFound)
	}
	b := ds.Bookings[i]
	return &b, nil
}
