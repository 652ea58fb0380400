package dashboard

import "github.com/shopspring/decimal"

// StatusSummary counts records by status and sums recorded hours.
// Records without total hours contribute zero.
type StatusSummary struct {
	Present    int64
	Late       int64
	Absent     int64
	HalfDay    int64
	TotalHours decimal.Decimal
}

// DayCounts summarises the records dated on one day.
type DayCounts struct {
	Total int64
	Late  int64
}

// SummaryFilter selects records dated on or after Since. UserID and
// EmployeeID are optional; EmployeeID matches the employee code or user id.
type SummaryFilter struct {
	Since      string
	UserID     string
	EmployeeID string
}
