//go:build unit

package datastore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/domain/user"
	"decor-rental/internal/infra"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockBackend) Save(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockBackend) Close() error {
	return m.Called().Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFileStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "site.json")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)
	return NewStore(backend, discardLogger()), path
}

func TestStoreWithFileBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("empty backend reads as empty dataset", func(t *testing.T) {
		store, _ := newFileStore(t)

		ds, err := store.Read(ctx)

		require.NoError(t, err)
		assert.Empty(t, ds.Items)
		assert.NotNil(t, ds.Bookings)
		assert.Zero(t, ds.Version)
	})

	t.Run("update persists and bumps version", func(t *testing.T) {
		store, _ := newFileStore(t)

		_, err := store.Update(ctx, func(ds *site.Dataset) error {
			ds.Items = append(ds.Items, inventory.Item{ID: "i1", Name: "Chair", Category: "Chairs", Quantity: 3})
			return nil
		})
		require.NoError(t, err)

		ds, err := store.Read(ctx)
		require.NoError(t, err)
		require.Len(t, ds.Items, 1)
		assert.Equal(t, "Chair", ds.Items[0].Name)
		assert.Equal(t, int64(1), ds.Version)
	})

	t.Run("failed mutation writes nothing", func(t *testing.T) {
		store, _ := newFileStore(t)

		_, err := store.Update(ctx, func(ds *site.Dataset) error {
			ds.Items = append(ds.Items, inventory.Item{ID: "i1"})
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		ds, err := store.Read(ctx)
		require.NoError(t, err)
		assert.Empty(t, ds.Items)
	})

	t.Run("replace overwrites whole document", func(t *testing.T) {
		store, _ := newFileStore(t)
		_, err := store.Update(ctx, func(ds *site.Dataset) error {
			ds.Items = []inventory.Item{{ID: "old"}}
			return nil
		})
		require.NoError(t, err)

		err = store.Replace(ctx, &site.Dataset{Items: []inventory.Item{{ID: "new"}}})
		require.NoError(t, err)

		ds, err := store.Read(ctx)
		require.NoError(t, err)
		require.Len(t, ds.Items, 1)
		assert.Equal(t, "new", ds.Items[0].ID)
		assert.Equal(t, int64(2), ds.Version)
	})

	t.Run("file holds plain json arrays", func(t *testing.T) {
		store, path := newFileStore(t)
		require.NoError(t, store.Replace(ctx, &site.Dataset{}))

		backend, err := NewFileBackend(path)
		require.NoError(t, err)
		raw, err := backend.Load(ctx)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Equal(t, []any{}, doc["items"])
		assert.Equal(t, []any{}, doc["bookings"])
	})
}

func TestStoreSeed(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	admin := config.AdminConfig{Name: "Owner", Email: "Owner@Example.com", Password: "password123"}
	build := func() (*site.Dataset, error) { return InitialDataset("Test Decor", admin, clk) }

	t.Run("seeds empty backend once", func(t *testing.T) {
		store, _ := newFileStore(t)

		seeded, err := store.Seed(ctx, build)
		require.NoError(t, err)
		assert.True(t, seeded)

		seeded, err = store.Seed(ctx, build)
		require.NoError(t, err)
		assert.False(t, seeded)

		ds, err := store.Read(ctx)
		require.NoError(t, err)
		require.Len(t, ds.Users, 1)
		owner := ds.Users[0]
		assert.Equal(t, user.RoleSuperAdmin, owner.Role)
		assert.Equal(t, "owner@example.com", owner.Email)
		assert.True(t, owner.IsFirstLogin)
		assert.NotEqual(t, admin.Password, owner.PasswordHash)
		assert.Equal(t, "Test Decor", ds.Settings.SiteName)
		assert.Equal(t, "2026-01-01T00:00:00Z", owner.CreatedAt)
	})

	t.Run("weak seed password is rejected", func(t *testing.T) {
		weak := admin
		weak.Password = "short"
		_, err := InitialDataset("Test Decor", weak, clk)
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestStoreBackendErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure is a backend failure", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Load", mock.Anything).Return(nil, assert.AnError)

		_, err := NewStore(backend, discardLogger()).Read(ctx)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBackendFailure))
		backend.AssertExpectations(t)
	})

	t.Run("corrupt document", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Load", mock.Anything).Return([]byte("{not json"), nil)

		_, err := NewStore(backend, discardLogger()).Read(ctx)

		assert.True(t, infra.IsKind(err, infra.KindCorruptDocument))
	})

	t.Run("save failure surfaces and is not retried", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Load", mock.Anything).Return(nil, ErrEmpty)
		backend.On("Save", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		_, err := NewStore(backend, discardLogger()).Update(ctx, func(*site.Dataset) error { return nil })

		require.ErrorIs(t, err, assert.AnError)
		backend.AssertNumberOfCalls(t, "Save", 1)
	})
}
