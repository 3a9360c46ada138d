//go:build unit || e2e

package storetest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"decor-rental/internal/domain/site"
	"decor-rental/internal/infra/datastore"

	"github.com/stretchr/testify/require"
)

// NewFileStore returns a store backed by a JSON file in a per-test temp dir.
func NewFileStore(t *testing.T) *datastore.Store {
	t.Helper()

	backend, err := datastore.NewFileBackend(filepath.Join(t.TempDir(), "site.json"))
	require.NoError(t, err)
	return datastore.NewStore(backend, DiscardLogger())
}

// NewSeededStore writes ds as the initial document.
func NewSeededStore(t *testing.T, ds *site.Dataset) *datastore.Store {
	t.Helper()

	store := NewFileStore(t)
	ds.Normalize()
	require.NoError(t, store.Replace(context.Background(), ds))
	return store
}

// MustRead fails the test when the store cannot be read.
func MustRead(t *testing.T, store *datastore.Store) *site.Dataset {
	t.Helper()

	ds, err := store.Read(context.Background())
	require.NoError(t, err)
	return ds
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
