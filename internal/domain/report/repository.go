package report

import "context"

type ReportRepository interface {
	// ListFiltered returns joined rows ordered by date descending
	ListFiltered(ctx context.Context, filter Filter) ([]Row, error)
}
