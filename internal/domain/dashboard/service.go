package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetEmployeeDashboard returns the caller's summary for the current month
	GetEmployeeDashboard(ctx context.Context) (MonthlySummaryResponse, error)

	// GetManagerDashboard returns today's figures using goroutines
	GetManagerDashboard(ctx context.Context) (ManagerDashboardResponse, error)

	// GetMonthlySummary returns the company-wide summary for the current month,
	// optionally narrowed to one employee
	GetMonthlySummary(ctx context.Context, employeeID string) (MonthlySummaryResponse, error)
}
