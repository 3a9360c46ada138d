//go:build unit

package sales_test

import (
	"testing"
	"time"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/sales"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v float64) *float64 { return &v }

func confirmedOn(status booking.Status, total float64, createdAt string) booking.Booking {
	return booking.Booking{
		ID:          createdAt + string(status),
		Status:      status,
		TotalAmount: amount(total),
		CreatedAt:   createdAt,
	}
}

func TestAggregate(t *testing.T) {
	opts := sales.Options{Location: time.UTC}

	t.Run("approved and cancelled booking", func(t *testing.T) {
		bookings := []booking.Booking{
			confirmedOn(booking.StatusApproved, 550, "2026-01-27"),
			{ID: "b2", Status: booking.StatusCancelled, TotalAmount: amount(300)},
		}

		report := sales.Aggregate(bookings, opts)

		assert.Equal(t, 550.0, report.LifetimeTotal)
		assert.Equal(t, 50.0, report.ConfirmedPercentage)
		assert.Equal(t, 550.0, report.Monthly[0])
		assert.Equal(t, 1, report.ConfirmedCount)
		assert.Equal(t, 2, report.TotalCount)
		require.Len(t, report.Daily, 1)
		assert.Equal(t, "2026-01-27", report.Daily[0].Date)
	})

	t.Run("no bookings yields zero percentage", func(t *testing.T) {
		report := sales.Aggregate(nil, opts)

		assert.Zero(t, report.LifetimeTotal)
		assert.Zero(t, report.ConfirmedPercentage)
		assert.Empty(t, report.Daily)
		assert.Equal(t, [12]float64{}, report.Monthly)
	})

	t.Run("totalCost is used when totalAmount is missing", func(t *testing.T) {
		b := booking.Booking{ID: "b1", Status: booking.StatusPaid, TotalCost: amount(120.5), CreatedAt: "2026-03-02"}

		report := sales.Aggregate([]booking.Booking{b}, opts)

		assert.Equal(t, 120.5, report.LifetimeTotal)
		assert.Equal(t, 120.5, report.Monthly[2])
	})

	t.Run("eventDate is used when createdAt is missing", func(t *testing.T) {
		b := booking.Booking{ID: "b1", Status: booking.StatusCompleted, TotalAmount: amount(80), EventDate: "2025-12-24"}

		report := sales.Aggregate([]booking.Booking{b}, opts)

		require.Len(t, report.Daily, 1)
		assert.Equal(t, "2025-12-24", report.Daily[0].Date)
		assert.Equal(t, 80.0, report.Monthly[11])
	})

	t.Run("malformed date counts toward totals only", func(t *testing.T) {
		bookings := []booking.Booking{
			confirmedOn(booking.StatusConfirmed, 100, "not-a-date"),
			confirmedOn(booking.StatusConfirmed, 50, "2026-02-10T09:30:00Z"),
		}

		report := sales.Aggregate(bookings, opts)

		assert.Equal(t, 150.0, report.LifetimeTotal)
		assert.Equal(t, 100.0, report.ConfirmedPercentage)
		require.Len(t, report.Daily, 1)
		assert.Equal(t, 50.0, report.Monthly[1])
		var sum float64
		for _, m := range report.Monthly {
			sum += m
		}
		assert.Equal(t, 50.0, sum)
	})

	t.Run("months aggregate across years", func(t *testing.T) {
		bookings := []booking.Booking{
			confirmedOn(booking.StatusPaid, 10, "2024-05-01"),
			confirmedOn(booking.StatusPaid, 15, "2026-05-20"),
		}

		report := sales.Aggregate(bookings, opts)

		assert.Equal(t, 25.0, report.Monthly[4])
		assert.Len(t, report.Daily, 2)
	})

	t.Run("daily buckets are most recent first", func(t *testing.T) {
		bookings := []booking.Booking{
			confirmedOn(booking.StatusApproved, 1, "2026-01-01"),
			confirmedOn(booking.StatusApproved, 2, "2026-03-01"),
			confirmedOn(booking.StatusPaid, 3, "2026-03-01 18:00:00"),
			confirmedOn(booking.StatusApproved, 4, "2026-02-01T08:00:00"),
		}

		report := sales.Aggregate(bookings, opts)

		dates := make([]string, 0, len(report.Daily))
		for _, d := range report.Daily {
			dates = append(dates, d.Date)
		}
		if diff := cmp.Diff([]string{"2026-03-01", "2026-02-01", "2026-01-01"}, dates); diff != "" {
			t.Errorf("daily order mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 2, report.Daily[0].Count)
		assert.Equal(t, 5.0, report.Daily[0].Total)
		assert.Len(t, report.Daily[0].Bookings, 2)
	})

	t.Run("bucket date follows the configured location", func(t *testing.T) {
		zone := time.FixedZone("UTC-5", -5*60*60)
		b := confirmedOn(booking.StatusPaid, 10, "2026-04-01T02:00:00Z")

		report := sales.Aggregate([]booking.Booking{b}, sales.Options{Location: zone})

		require.Len(t, report.Daily, 1)
		assert.Equal(t, "2026-03-31", report.Daily[0].Date)
		assert.Equal(t, 10.0, report.Monthly[2])
	})

	t.Run("custom confirmed set", func(t *testing.T) {
		bookings := []booking.Booking{
			confirmedOn(booking.StatusApproved, 100, "2026-01-01"),
			confirmedOn(booking.StatusPaid, 40, "2026-01-02"),
		}

		report := sales.Aggregate(bookings, sales.Options{
			Confirmed: sales.NewStatusSet(booking.StatusPaid),
			Location:  time.UTC,
		})

		assert.Equal(t, 40.0, report.LifetimeTotal)
		assert.Equal(t, 50.0, report.ConfirmedPercentage)
	})

	t.Run("decimal sums do not drift", func(t *testing.T) {
		bookings := []booking.Booking{
			confirmedOn(booking.StatusPaid, 0.1, "2026-01-01"),
			confirmedOn(booking.StatusPaid, 0.2, "2026-01-01"),
		}

		report := sales.Aggregate(bookings, opts)

		assert.Equal(t, 0.3, report.LifetimeTotal)
	})

	t.Run("pending and cancelled are never revenue by default", func(t *testing.T) {
		bookings := []booking.Booking{
			confirmedOn(booking.StatusPending, 100, "2026-01-01"),
			confirmedOn(booking.StatusCancelled, 100, "2026-01-01"),
		}

		report := sales.Aggregate(bookings, opts)

		assert.Zero(t, report.LifetimeTotal)
		assert.Zero(t, report.ConfirmedPercentage)
		assert.Empty(t, report.Daily)
	})
}

func TestParseStatusSet(t *testing.T) {
	t.Run("parses case insensitive list", func(t *testing.T) {
		set, err := sales.ParseStatusSet("approved, PAID ,")
		require.NoError(t, err)

		assert.True(t, set.Contains(booking.StatusApproved))
		assert.True(t, set.Contains(booking.StatusPaid))
		assert.False(t, set.Contains(booking.StatusConfirmed))
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := sales.ParseStatusSet("Approved,Shipped")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "date only", input: "2026-01-27", ok: true},
		{name: "rfc3339", input: "2026-01-27T10:00:00Z", ok: true},
		{name: "rfc3339 with millis", input: "2026-01-27T10:00:00.123+01:00", ok: true},
		{name: "local datetime", input: "2026-01-27T10:00:00", ok: true},
		{name: "space separated", input: "2026-01-27 10:00:00", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "garbage", input: "27/01/2026", ok: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := sales.ParseDate(c.input, time.UTC)
			assert.Equal(t, c.ok, ok)
		})
	}
}
