package dashboard

// MonthlySummaryResponse is the current month's attendance summary
type MonthlySummaryResponse struct {
	Month      string `json:"month"` // Format: "YYYY-MM"
	Since      string `json:"since"` // Format: "YYYY-MM-DD"
	Present    int64  `json:"present"`
	Late       int64  `json:"late"`
	Absent     int64  `json:"absent"`
	HalfDay    int64  `json:"half_day"`
	TotalHours string `json:"total_hours"`
}

// ManagerDashboardResponse holds today's company-wide figures.
// PresentCount is every record dated today, whatever its status.
type ManagerDashboardResponse struct {
	Date           string `json:"date"` // Format: "YYYY-MM-DD"
	TotalEmployees int64  `json:"total_employees"`
	PresentCount   int64  `json:"present_count"`
	LateCount      int64  `json:"late_count"`
}

func NewMonthlySummaryResponse(month, since string, s StatusSummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:      month,
		Since:      since,
		Present:    s.Present,
		Late:       s.Late,
		Absent:     s.Absent,
		HalfDay:    s.HalfDay,
		TotalHours: s.TotalHours.StringFixed(2),
	}
}
