package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"decor-rental/internal/domain/site"
	"decor-rental/internal/infra"
)

// Store reads and writes the site dataset through a Backend.
//
// There is no locking and no version check: two concurrent Updates both read
// the same document and the later Save wins. Version is bumped on every write
// so callers can observe that a write happened.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

func NewStore(backend Backend, logger *slog.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// Read returns the current dataset, or an empty one when nothing has been saved.
func (s *Store) Read(ctx context.Context) (*site.Dataset, error) {
	ds, err := s.load(ctx)
	if errors.Is(err, ErrEmpty) {
		ds = &site.Dataset{}
		ds.Normalize()
		return ds, nil
	}
	return ds, err
}

// Update loads the dataset, applies fn and writes the whole document back.
// Nothing is written when fn returns an error.
func (s *Store) Update(ctx context.Context, fn func(*site.Dataset) error) (*site.Dataset, error) {
	ds, err := s.Read(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(ds); err != nil {
		return nil, err
	}
	ds.Version++
	if err := s.save(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// Replace overwrites the stored document with ds.
func (s *Store) Replace(ctx context.Context, ds *site.Dataset) error {
	current, err := s.Read(ctx)
	if err != nil {
		return err
	}
	ds.Version = current.Version + 1
	return s.save(ctx, ds)
}

// Seed writes the dataset built by build when the backend holds nothing yet.
// It reports whether a seed was written.
func (s *Store) Seed(ctx context.Context, build func() (*site.Dataset, error)) (bool, error) {
	_, err := s.load(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrEmpty) {
		return false, err
	}
	ds, err := build()
	if err != nil {
		return false, err
	}
	ds.Version = 1
	if err := s.save(ctx, ds); err != nil {
		return false, err
	}
	s.logger.Info("Seeded empty datastore", slog.Int("users", len(ds.Users)))
	return true, nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) load(ctx context.Context) (*site.Dataset, error) {
	data, err := s.backend.Load(ctx)
	if errors.Is(err, ErrEmpty) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindBackendFailure, "failed to load dataset", err)
	}
	var ds site.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindCorruptDocument, "failed to decode dataset", err)
	}
	ds.Normalize()
	return &ds, nil
}

func (s *Store) save(ctx context.Context, ds *site.Dataset) error {
	ds.Normalize()
	data, err := json.Marshal(ds)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindEncodeFailure, "failed to encode dataset", err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindBackendFailure, "failed to save dataset", err)
	}
	return nil
}
