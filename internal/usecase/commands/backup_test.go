//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/domain/user"
	"decor-rental/internal/infra/backup"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/commands"
	"decor-rental/tests/common/builder"
	"decor-rental/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDataset(t *testing.T) *site.Dataset {
	t.Helper()
	owner, err := builder.NewUserBuilder().WithRole("Super Admin").BuildDomain()
	require.NoError(t, err)
	return &site.Dataset{
		Items:    []inventory.Item{builder.NewItemBuilder().BuildDomain()},
		Bookings: []booking.Booking{builder.NewBookingBuilder().BuildDomain()},
		Packages: []catalog.Package{{ID: "pkg-1", Name: "Gold", Price: 1200}},
		Users:    []user.User{*owner},
	}
}

func TestBackupRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("json restore replaces the collections it carries", func(t *testing.T) {
		store := storetest.NewSeededStore(t, seededDataset(t))
		events := &storetest.EventLog{}
		uc := commands.NewBackupCommands(store, events, storetest.DiscardLogger())

		incoming := &site.Dataset{
			Items: []inventory.Item{
				builder.NewItemBuilder().BuildDomain(),
				builder.NewItemBuilder().WithCategory("Tables").BuildDomain(),
			},
			Bookings: []booking.Booking{},
		}
		data, err := backup.ExportJSON(incoming)
		require.NoError(t, err)

		counts, err := uc.Restore(ctx, commands.FormatJSON, bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, backup.Counts{Items: 2, Bookings: 0, Packages: 0}, *counts)

		ds := storetest.MustRead(t, store)
		assert.Len(t, ds.Items, 2)
		assert.Empty(t, ds.Bookings)
		// ExportJSON writes every collection, so packages are replaced too.
		assert.Empty(t, ds.Packages)
		// no Super Admin in the file, users stay
		assert.Len(t, ds.Users, 1)
		assert.Equal(t, []string{"backup_restored:json:ok"}, events.Events)
	})

	t.Run("collections absent from the file are kept", func(t *testing.T) {
		store := storetest.NewSeededStore(t, seededDataset(t))
		uc := commands.NewBackupCommands(store, &storetest.EventLog{}, storetest.DiscardLogger())

		_, err := uc.Restore(ctx, commands.FormatJSON, strings.NewReader(`{"bookings":[]}`))
		require.NoError(t, err)

		ds := storetest.MustRead(t, store)
		assert.Empty(t, ds.Bookings)
		assert.Len(t, ds.Items, 1)
		assert.Len(t, ds.Packages, 1)
	})

	t.Run("xlsx round trip", func(t *testing.T) {
		source := seededDataset(t)
		data, err := backup.ExportXLSX(&backup.Snapshot{
			Items: source.Items, Bookings: source.Bookings, Packages: source.Packages,
		})
		require.NoError(t, err)

		store := storetest.NewFileStore(t)
		uc := commands.NewBackupCommands(store, &storetest.EventLog{}, storetest.DiscardLogger())
		counts, err := uc.Restore(ctx, commands.FormatXLSX, bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, backup.Counts{Items: 1, Bookings: 1, Packages: 1}, *counts)

		ds := storetest.MustRead(t, store)
		require.Len(t, ds.Bookings, 1)
		assert.Equal(t, source.Bookings[0].CustomerName, ds.Bookings[0].CustomerName)
		assert.Equal(t, source.Bookings[0].Amount(), ds.Bookings[0].Amount())
	})

	rejected := []struct {
		name   string
		format string
		body   string
	}{
		{name: "file without items or bookings", format: commands.FormatJSON, body: `{"packages":[]}`},
		{name: "malformed json", format: commands.FormatJSON, body: `{"items":`},
		{name: "garbage xlsx", format: commands.FormatXLSX, body: "not a workbook"},
		{name: "unsupported format", format: "csv", body: "a,b"},
		{name: "negative inventory", format: commands.FormatJSON, body: `{"items":[{"name":"","pricePerDay":-10,"quantity":-3}]}`},
		{name: "unknown booking status", format: commands.FormatJSON, body: `{"bookings":[{"customerName":"Ama","phone":"0200","eventDate":"2026-01-27","status":"Bogus","totalAmount":-50}]}`},
		{name: "negative confirmed total", format: commands.FormatJSON, body: `{"bookings":[{"customerName":"Ama","phone":"0200","eventDate":"2026-01-27","status":"Approved","totalAmount":-500,"createdAt":"2026-01-27"}]}`},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name+" and leaves the store untouched", func(t *testing.T) {
			store := storetest.NewSeededStore(t, seededDataset(t))
			before := storetest.MustRead(t, store)
			events := &storetest.EventLog{}
			uc := commands.NewBackupCommands(store, events, storetest.DiscardLogger())

			_, err := uc.Restore(ctx, tc.format, strings.NewReader(tc.body))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidBackup))

			assert.Equal(t, before, storetest.MustRead(t, store))
			assert.Equal(t, []string{"backup_restored:" + tc.format + ":rejected"}, events.Events)
		})
	}
}

func TestBackupReset(t *testing.T) {
	store := storetest.NewSeededStore(t, seededDataset(t))
	events := &storetest.EventLog{}
	uc := commands.NewBackupCommands(store, events, storetest.DiscardLogger())

	require.NoError(t, uc.Reset(context.Background()))

	ds := storetest.MustRead(t, store)
	assert.Empty(t, ds.Items)
	assert.Empty(t, ds.Bookings)
	assert.Len(t, ds.Packages, 1)
	assert.Len(t, ds.Users, 1)
	assert.Equal(t, []string{"dataset_reset"}, events.Events)
}
