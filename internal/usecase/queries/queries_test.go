//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/message"
	"decor-rental/internal/domain/sales"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/queries"
	"decor-rental/tests/common/builder"
	"decor-rental/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids[T site.Identifiable](records []T) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.EntityID())
	}
	return out
}

func bookingAt(id, createdAt string, status booking.Status, total float64) booking.Booking {
	return builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.ID = id }).
		WithCreatedAt(createdAt).WithStatus(status).WithTotal(total).
		BuildDomain()
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	store := storetest.NewSeededStore(t, &site.Dataset{Bookings: []booking.Booking{
		bookingAt("old", "2026-01-05T10:00:00Z", booking.StatusPaid, 100),
		bookingAt("broken", "not a date", booking.StatusPending, 50),
		bookingAt("new", "2026-03-01T10:00:00Z", booking.StatusPending, 200),
		bookingAt("mid", "2026-02-01", booking.StatusPaid, 300),
	}})
	q := queries.NewBookingQueries(store)

	t.Run("newest first with unparseable dates last", func(t *testing.T) {
		got, err := q.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"new", "mid", "old", "broken"}, ids(got))
	})

	t.Run("status filter", func(t *testing.T) {
		paid := booking.StatusPaid
		got, err := q.List(ctx, &paid)
		require.NoError(t, err)
		assert.Equal(t, []string{"mid", "old"}, ids(got))
	})

	t.Run("get", func(t *testing.T) {
		got, err := q.Get(ctx, "mid")
		require.NoError(t, err)
		assert.Equal(t, 300.0, got.Amount())

		_, err = q.Get(ctx, "missing")
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})
}

func TestInventoryQueries(t *testing.T) {
	ctx := context.Background()
	item := func(id, category string, qty int) inventory.Item {
		it := builder.NewItemBuilder().WithCategory(category).WithQuantity(qty).BuildDomain()
		it.ID = id
		return it
	}
	store := storetest.NewSeededStore(t, &site.Dataset{Items: []inventory.Item{
		item("chair", "Chair", 120),
		item("tent", "Tents", 5),
		item("arch", "Arches", 0),
		item("cups", "tableware", 3),
	}})
	q := queries.NewInventoryQueries(store)

	t.Run("category filter matches singular and plural", func(t *testing.T) {
		got, err := q.List(ctx, "chairs")
		require.NoError(t, err)
		assert.Equal(t, []string{"chair"}, ids(got))
	})

	t.Run("others is everything outside the standard list", func(t *testing.T) {
		got, err := q.List(ctx, "Others")
		require.NoError(t, err)
		assert.Equal(t, []string{"arch"}, ids(got))
	})

	t.Run("views carry the stock badge", func(t *testing.T) {
		got, err := q.List(ctx, "")
		require.NoError(t, err)
		badges := map[string]inventory.StockStatus{}
		for _, v := range got {
			badges[v.ID] = v.StockStatus
		}
		assert.Equal(t, map[string]inventory.StockStatus{
			"chair": inventory.InStock,
			"tent":  inventory.LowStock,
			"arch":  inventory.OutOfStock,
			"cups":  inventory.LowStock,
		}, badges)
	})

	t.Run("stats count five units as a badge but not an alert", func(t *testing.T) {
		stats, err := q.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, stats.TotalItems)
		assert.Equal(t, 128, stats.TotalUnits)
		assert.Equal(t, 2, stats.LowStock)
		assert.Equal(t, 1, stats.OutOfStock)
		// arch (0) and cups (3); tent (5) is excluded
		assert.Equal(t, 2, stats.LowStockAlerts)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := q.Get(ctx, "missing")
		assert.True(t, errs.Is(err, errs.ErrItemNotFound))
	})
}

func TestMessageAndPackageQueries(t *testing.T) {
	ctx := context.Background()
	store := storetest.NewSeededStore(t, &site.Dataset{
		Messages: []message.Message{
			{ID: "a", CreatedAt: "2026-01-01T00:00:00Z", IsRead: true},
			{ID: "b", CreatedAt: "2026-02-01T00:00:00Z"},
			{ID: "c", CreatedAt: "2026-01-15T00:00:00Z"},
		},
		Packages: []catalog.Package{
			{ID: "basic"},
			{ID: "gold", IsFeatured: true},
			{ID: "silver"},
			{ID: "platinum", IsFeatured: true},
		},
	})

	list, err := queries.NewMessageQueries(store).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(list.Messages))
	assert.Equal(t, 2, list.Unread)

	pq := queries.NewPackageQueries(store)
	plain, err := pq.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"basic", "gold", "silver", "platinum"}, ids(plain))

	featured, err := pq.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"gold", "platinum", "basic", "silver"}, ids(featured))
}

func TestReportQueries(t *testing.T) {
	store := storetest.NewSeededStore(t, &site.Dataset{
		Bookings: []booking.Booking{
			bookingAt("a", "2026-01-05T10:00:00Z", booking.StatusPaid, 100),
			bookingAt("b", "2026-01-05T18:00:00Z", booking.StatusApproved, 50.5),
			bookingAt("c", "2026-02-01T10:00:00Z", booking.StatusPending, 999),
			bookingAt("d", "2026-03-09T10:00:00Z", booking.StatusCompleted, 200),
		},
		Items: []inventory.Item{builder.NewItemBuilder().WithQuantity(2).BuildDomain()},
	})
	q := queries.NewReportQueries(store, sales.Options{Location: time.UTC})

	report, err := q.Sales(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 350.5, report.LifetimeTotal)
	assert.Equal(t, 3, report.ConfirmedCount)
	assert.Equal(t, 4, report.TotalCount)
	assert.Equal(t, 75.0, report.ConfirmedPercentage)
	assert.Equal(t, 150.5, report.Monthly[0])
	assert.Equal(t, 0.0, report.Monthly[1])
	assert.Equal(t, 200.0, report.Monthly[2])

	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2026-03-09", report.Daily[0].Date)
	assert.Equal(t, "2026-01-05", report.Daily[1].Date)
	assert.Equal(t, 2, report.Daily[1].Count)

	assert.Equal(t, 1, report.Inventory.LowStockAlerts)
}
