package datastore

import (
	"context"
	"errors"
)

// ErrEmpty is returned by Backend.Load when no document has been saved yet.
var ErrEmpty = errors.New("datastore is empty")

// Backend persists the whole site document as one opaque JSON blob.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}
