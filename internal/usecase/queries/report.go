package queries

import (
	"context"

	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/sales"
	"decor-rental/internal/usecase/shared"
)

type ReportQueries interface {
	Sales(ctx context.Context) (*SalesReport, error)
}

type reportQueriesImpl struct {
	reader shared.DatasetReader
	opts   sales.Options
}

// NewReportQueries takes the confirmed status set and reporting timezone from configuration.
func NewReportQueries(reader shared.DatasetReader, opts sales.Options) ReportQueries {
	return &reportQueriesImpl{reader: reader, opts: opts}
}

func (q *reportQueriesImpl) Sales(ctx context.Context) (*SalesReport, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &SalesReport{
		Report:    sales.Aggregate(ds.Bookings, q.opts),
		Inventory: inventory.Summarize(ds.Items),
	}, nil
}
