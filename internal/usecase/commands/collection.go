package commands

import (
	"context"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/domain/testimonial"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/shared"
)

// collection binds a record type to its slice in the dataset and to the
// not-found error reported for it.
type collection[T site.Identifiable] struct {
	slice    func(ds *site.Dataset) *[]T
	notFound error
}

var (
	items = collection[inventory.Item]{
		slice:    func(ds *site.Dataset) *[]inventory.Item { return &ds.Items },
		notFound: errs.ErrItemNotFound,
	}
	bookings = collection[booking.Booking]{
		slice:    func(ds *site.Dataset) *[]booking.Booking { return &ds.Bookings },
		notFound: errs.ErrBookingNotFound,
	}
	packages = collection[catalog.Package]{
		slice:    func(ds *site.Dataset) *[]catalog.Package { return &ds.Packages },
		notFound: errs.ErrPackageNotFound,
	}
	testimonials = collection[testimonial.Testimonial]{
		slice:    func(ds *site.Dataset) *[]testimonial.Testimonial { return &ds.Testimonials },
		notFound: errs.ErrTestimonialNotFound,
	}
)

func (col collection[T]) insert(ctx context.Context, store shared.DatasetStore, rec T) error {
	_, err := store.Update(ctx, func(ds *site.Dataset) error {
		s := col.slice(ds)
		*s = append(*s, rec)
		return nil
	})
	return err
}

// replace stores merge(stored) in place of the record with id. A merge error
// aborts the write.
func (col collection[T]) replace(ctx context.Context, store shared.DatasetStore, id string, merge func(stored T) (T, error)) (*T, error) {
	var updated T
	_, err := store.Update(ctx, func(ds *site.Dataset) error {
		s := col.slice(ds)
		i := site.IndexOf(*s, id)
		if i < 0 {
			return shared.NotFound(col.notFound)
		}
		next, err := merge((*s)[i])
		if err != nil {
			return err
		}
		(*s)[i] = next
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (col collection[T]) remove(ctx context.Context, store shared.DatasetStore, id string) error {
	_, err := store.Update(ctx, func(ds *site.Dataset) error {
		s := col.slice(ds)
		var ok bool
		if *s, ok = site.Remove(*s, id); !ok {
			return shared.NotFound(col.notFound)
		}
		return nil
	})
	return err
}
