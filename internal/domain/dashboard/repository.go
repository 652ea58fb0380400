package dashboard

import (
	"context"
)

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetStatusSummary counts statuses and sums hours in a single query
	GetStatusSummary(ctx context.Context, filter SummaryFilter) (StatusSummary, error)

	// GetDayCounts returns total and late record counts for a date
	GetDayCounts(ctx context.Context, date string) (DayCounts, error)
}
