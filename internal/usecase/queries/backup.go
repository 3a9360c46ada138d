package queries

import (
	"context"

	"decor-rental/internal/infra/backup"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/usecase/shared"
)

//go:generate mockgen -source=backup.go -destination=../../../tests/mock/queries/backup.go -package=queriesmock

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BackupQueries interface {
	ExportJSON(ctx context.Context) (*BackupFile, error)
	ExportXLSX(ctx context.Context) (*BackupFile, error)
}

type backupQueriesImpl struct {
	reader shared.DatasetReader
	clock  clock.Clock
	events shared.EventRecorder
}

func NewBackupQueries(reader shared.DatasetReader, clk clock.Clock, events shared.EventRecorder) BackupQueries {
	return &backupQueriesImpl{reader: reader, clock: clk, events: events}
}

func (q *backupQueriesImpl) ExportJSON(ctx context.Context) (*BackupFile, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	data, err := backup.ExportJSON(ds)
	if err != nil {
		return nil, err
	}
	q.events.BackupExported("json")
	return &BackupFile{
		FileName:    backup.JSONFileName(ds.Settings.SiteName, q.clock.Now()),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

func (q *backupQueriesImpl) ExportXLSX(ctx context.Context) (*BackupFile, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	data, err := backup.ExportXLSX(&backup.Snapshot{
		Items:    ds.Items,
		Bookings: ds.Bookings,
		Packages: ds.Packages,
	})
	if err != nil {
		return nil, err
	}
	q.events.BackupExported("xlsx")
	return &BackupFile{
		FileName:    backup.FileName(ds.Settings.SiteName, q.clock.Now()),
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}
