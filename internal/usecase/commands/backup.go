package commands

import (
	"context"
	"io"
	"log/slog"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/infra/backup"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/shared"
)

//go:generate mockgen -source=backup.go -destination=../../../tests/mock/commands/backup.go -package=commandsmock

const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

type BackupCommands interface {
	// Restore decodes and validates the file before touching the store. A
	// rejected file leaves the stored dataset unchanged.
	Restore(ctx context.Context, format string, r io.Reader) (*backup.Counts, error)
	// Reset clears bookings and inventory.
	Reset(ctx context.Context) error
}

type backupCommandsImpl struct {
	store  shared.DatasetStore
	events shared.EventRecorder
	logger *slog.Logger
}

func NewBackupCommands(store shared.DatasetStore, events shared.EventRecorder, logger *slog.Logger) BackupCommands {
	return &backupCommandsImpl{store: store, events: events, logger: logger}
}

func (uc *backupCommandsImpl) Restore(ctx context.Context, format string, r io.Reader) (*backup.Counts, error) {
	snapshot, err := decodeBackup(format, r)
	if err == nil {
		err = snapshot.Validate()
	}
	if err != nil {
		uc.events.BackupRestored(format, false)
		return nil, errs.Mark(err, errs.ErrInvalidBackup)
	}

	ds, err := uc.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.ApplyTo(ds)
	if err := uc.store.Replace(ctx, ds); err != nil {
		return nil, err
	}

	counts := snapshot.Counts()
	uc.events.BackupRestored(format, true)
	uc.logger.Info("Backup restored",
		slog.String("format", format),
		slog.Int("items", counts.Items),
		slog.Int("bookings", counts.Bookings),
		slog.Int("packages", counts.Packages),
	)
	return &counts, nil
}

func decodeBackup(format string, r io.Reader) (*backup.Snapshot, error) {
	switch format {
	case FormatXLSX:
		return backup.ImportXLSX(r)
	case FormatJSON:
		return backup.ImportJSON(r)
	default:
		return nil, backup.ErrUnsupportedFormat
	}
}

func (uc *backupCommandsImpl) Reset(ctx context.Context) error {
	_, err := uc.store.Update(ctx, func(ds *site.Dataset) error {
		ds.Bookings = []booking.Booking{}
		ds.Items = []inventory.Item{}
		return nil
	})
	if err != nil {
		return err
	}
	uc.events.DatasetReset()
	uc.logger.Warn("Dataset reset: bookings and inventory cleared")
	return nil
}
