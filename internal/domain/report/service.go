package report

import (
	"context"
	"io"
)

type ReportService interface {
	// GetReport returns records matching filter, newest first
	GetReport(ctx context.Context, filter Filter) ([]RowResponse, error)

	// GetTodayStatus returns today's roster for every user
	GetTodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// ExportCSV writes the filtered report as CSV to w
	ExportCSV(ctx context.Context, filter Filter, w io.Writer) error
}
