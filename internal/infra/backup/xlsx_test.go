//go:build unit

package backup_test

import (
	"bytes"
	"testing"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/infra/backup"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSnapshot() *backup.Snapshot {
	return &backup.Snapshot{
		Items: []inventory.Item{
			{ID: "i1", Name: "Chiavari chair", Category: "Chairs", Description: ptr.Of("Gold"), PricePerDay: 5.5, Quantity: 120, Images: []string{"/uploads/chair.jpg"}, CreatedAt: "2026-01-02T10:00:00Z"},
			{ID: "i2", Name: "Marquee", Category: "Tents", PricePerDay: 300, Quantity: 2},
		},
		Bookings: []booking.Booking{
			{
				ID:           "b1",
				CustomerName: "Ama Mensah",
				Phone:        "+233200000000",
				Email:        ptr.Of("ama@example.com"),
				EventType:    "Wedding",
				EventDate:    "2026-06-01",
				Location:     "Accra",
				Status:       booking.StatusApproved,
				TotalAmount:  ptr.Of(550.0),
				Items: []booking.LineItem{
					{Name: "Chiavari chair", Quantity: 50, Price: 5},
					{Name: "Round table", Quantity: 5, Price: 60},
				},
				CreatedAt: "2026-01-27T09:00:00Z",
			},
			{
				ID:           "b2",
				CustomerName: "Kofi",
				Phone:        "0240000000",
				EventDate:    "2026-07-01",
				Status:       booking.StatusPending,
				TotalCost:    ptr.Of(80.0),
			},
		},
		Packages: []catalog.Package{
			{ID: "p1", Name: "Gold package", Description: "Everything", Price: 1200, IsFeatured: true, Images: []string{"/uploads/p.jpg"}},
		},
		HasItems:    true,
		HasBookings: true,
		HasPackages: true,
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	in := sampleSnapshot()

	data, err := backup.ExportXLSX(in)
	require.NoError(t, err)

	out, err := backup.ImportXLSX(bytes.NewReader(data))
	require.NoError(t, err)
	require.NoError(t, out.Validate())

	t.Run("sheets are present", func(t *testing.T) {
		assert.True(t, out.HasItems)
		assert.True(t, out.HasBookings)
		assert.True(t, out.HasPackages)
	})

	t.Run("items keep everything but images", func(t *testing.T) {
		want := []inventory.Item{
			{ID: "i1", Name: "Chiavari chair", Category: "Chairs", Description: ptr.Of("Gold"), PricePerDay: 5.5, Quantity: 120, Images: []string{inventory.PlaceholderImage}, CreatedAt: "2026-01-02T10:00:00Z"},
			{ID: "i2", Name: "Marquee", Category: "Tents", PricePerDay: 300, Quantity: 2, Images: []string{inventory.PlaceholderImage}},
		}
		if diff := cmp.Diff(want, out.Items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("bookings keep line items without prices", func(t *testing.T) {
		require.Len(t, out.Bookings, 2)
		b := out.Bookings[0]
		assert.Equal(t, "Ama Mensah", b.CustomerName)
		assert.Equal(t, booking.StatusApproved, b.Status)
		assert.Equal(t, 550.0, b.Amount())
		assert.Equal(t, "2026-01-27T09:00:00Z", b.CreatedAt)
		assert.Equal(t, []booking.LineItem{
			{Name: "Chiavari chair", Quantity: 50},
			{Name: "Round table", Quantity: 5},
		}, b.Items)

		second := out.Bookings[1]
		assert.Equal(t, 80.0, second.Amount(), "totalCost is exported as the total")
		assert.Nil(t, second.Email)
		assert.Empty(t, second.Items)
	})

	t.Run("packages", func(t *testing.T) {
		require.Len(t, out.Packages, 1)
		p := out.Packages[0]
		assert.Equal(t, "Gold package", p.Name)
		assert.Equal(t, 1200.0, p.Price)
		assert.True(t, p.IsFeatured)
		assert.Equal(t, []string{inventory.PlaceholderImage}, p.Images)
	})
}

func TestImportXLSX(t *testing.T) {
	t.Run("workbook without inventory or bookings is rejected", func(t *testing.T) {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetName("Sheet1", backup.SheetServices))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)

		s, err := backup.ImportXLSX(buf)
		require.NoError(t, err)

		assert.ErrorIs(t, s.Validate(), backup.ErrMissingCollections)
	})

	t.Run("legacy headers and item encoding", func(t *testing.T) {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetName("Sheet1", "bookings"))
		require.NoError(t, f.SetSheetRow("bookings", "A1", &[]any{"Customer Name", "Event Date", "Total Amount", "Status", "Items"}))
		require.NoError(t, f.SetSheetRow("bookings", "A2", &[]any{"Esi", "2026-02-14", 99.5, "paid", "Chair (10), Table (2)"}))
		require.NoError(t, f.SetSheetRow("bookings", "A4", &[]any{"Yaw", "2026-03-01", "", "unknown", "Tent"}))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)

		s, err := backup.ImportXLSX(buf)
		require.NoError(t, err)

		require.Len(t, s.Bookings, 2, "blank rows are skipped")
		first := s.Bookings[0]
		assert.NotEmpty(t, first.ID)
		assert.Equal(t, "2026-02-14", first.EventDate)
		assert.Equal(t, booking.StatusPaid, first.Status)
		assert.Equal(t, 99.5, first.Amount())
		assert.Equal(t, []booking.LineItem{{Name: "Chair", Quantity: 10}, {Name: "Table", Quantity: 2}}, first.Items)

		second := s.Bookings[1]
		assert.Equal(t, booking.StatusPending, second.Status)
		assert.Nil(t, second.TotalAmount)
		assert.Equal(t, []booking.LineItem{{Name: "Tent", Quantity: 1}}, second.Items)
		assert.False(t, s.HasItems)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetName("Sheet1", backup.SheetInventory))
		require.NoError(t, f.SetSheetRow(backup.SheetInventory, "A1", &[]any{"Name", "Quantity"}))
		require.NoError(t, f.SetSheetRow(backup.SheetInventory, "A2", &[]any{"Chair", "lots"}))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)

		_, err = backup.ImportXLSX(buf)

		require.Error(t, err)
		assert.True(t, errs.Is(err, backup.ErrUnreadableFile))
	})

	t.Run("fractional quantity", func(t *testing.T) {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetName("Sheet1", backup.SheetInventory))
		require.NoError(t, f.SetSheetRow(backup.SheetInventory, "A1", &[]any{"Name", "Category", "Quantity"}))
		require.NoError(t, f.SetSheetRow(backup.SheetInventory, "A2", &[]any{"Chair", "Chairs", 2.7}))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)

		_, err = backup.ImportXLSX(buf)

		require.Error(t, err)
		assert.True(t, errs.Is(err, backup.ErrUnreadableFile))
	})

	t.Run("negative values decode but fail validation", func(t *testing.T) {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetName("Sheet1", backup.SheetInventory))
		require.NoError(t, f.SetSheetRow(backup.SheetInventory, "A1", &[]any{"Name", "Category", "PricePerDay", "Quantity"}))
		require.NoError(t, f.SetSheetRow(backup.SheetInventory, "A2", &[]any{"Chair", "Chairs", -10, -3}))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)

		s, err := backup.ImportXLSX(buf)
		require.NoError(t, err)

		assert.True(t, errs.Is(s.Validate(), backup.ErrInvalidRecord))
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, err := backup.ImportXLSX(bytes.NewReader([]byte("hello")))

		require.Error(t, err)
		assert.True(t, errs.Is(err, backup.ErrUnreadableFile))
	})
}
