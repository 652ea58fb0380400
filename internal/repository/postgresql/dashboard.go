package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetStatusSummary implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetStatusSummary(ctx context.Context, filter dashboard.SummaryFilter) (dashboard.StatusSummary, error) {
	q := GetQuerier(ctx, r.db)

	since, err := dateParam(filter.Since)
	if err != nil {
		return dashboard.StatusSummary{}, err
	}

	args := []interface{}{since}
	query := `
		SELECT
			COUNT(*) FILTER (WHERE a.status = 'Present'),
			COUNT(*) FILTER (WHERE a.status = 'Late'),
			COUNT(*) FILTER (WHERE a.status = 'Absent'),
			COUNT(*) FILTER (WHERE a.status = 'Half-day'),
			COALESCE(SUM(COALESCE(a.total_hours, 0)), 0)
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date >= $1
	`
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND a.user_id = $%d", len(args))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += " AND " + employeeMatch(fmt.Sprintf("$%d", len(args)))
	}

	var s dashboard.StatusSummary
	var hours decimal.NullDecimal
	if err := q.QueryRow(ctx, query, args...).Scan(&s.Present, &s.Late, &s.Absent, &s.HalfDay, &hours); err != nil {
		return dashboard.StatusSummary{}, fmt.Errorf("failed to get status summary: %w", err)
	}
	s.TotalHours = hours.Decimal
	return s, nil
}

// GetDayCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetDayCounts(ctx context.Context, dateKey string) (dashboard.DayCounts, error) {
	q := GetQuerier(ctx, r.db)

	date, err := dateParam(dateKey)
	if err != nil {
		return dashboard.DayCounts{}, err
	}

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'Late')
		FROM attendances
		WHERE date = $1
	`
	var c dashboard.DayCounts
	if err := q.QueryRow(ctx, query, date).Scan(&c.Total, &c.Late); err != nil {
		return dashboard.DayCounts{}, fmt.Errorf("failed to get day counts: %w", err)
	}
	return c, nil
}
