package shared

import (
	"context"

	"decor-rental/internal/domain/site"
)

// DatasetReader is the read side of the datastore.
type DatasetReader interface {
	Read(ctx context.Context) (*site.Dataset, error)
}

// DatasetStore is the write side. Update applies fn to a freshly read dataset
// and persists the whole document; Replace overwrites it.
type DatasetStore interface {
	DatasetReader
	Update(ctx context.Context, fn func(*site.Dataset) error) (*site.Dataset, error)
	Replace(ctx context.Context, ds *site.Dataset) error
}

// EventRecorder receives business events worth counting.
type EventRecorder interface {
	BookingSubmitted(status string)
	BookingStatusChanged(status string)
	BackupRestored(format string, ok bool)
	BackupExported(format string)
	DatasetReset()
}
