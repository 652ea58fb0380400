package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// employeeMatch selects rows of one employee by employee code or user id.
// The user id is compared as text so a malformed value matches nothing
// instead of failing the uuid cast.
func employeeMatch(placeholder string) string {
	return fmt.Sprintf("(u.employee_id = %s OR a.user_id::text = %s)", placeholder, placeholder)
}

// ListFiltered implements report.ReportRepository.
func (r *reportRepositoryImpl) ListFiltered(ctx context.Context, filter report.Filter) ([]report.Row, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.StartDate != "" {
		start, err := dateParam(filter.StartDate)
		if err != nil {
			return nil, err
		}
		args = append(args, start)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != "" {
		end, err := dateParam(filter.EndDate)
		if err != nil {
			return nil, err
		}
		args = append(args, end)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if filter.HasEmployee() {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, employeeMatch(fmt.Sprintf("$%d", len(args))))
	}

	query := `
		SELECT a.id, a.user_id, u.name, u.email, u.employee_id, u.department,
		       a.date, a.check_in_time, a.check_out_time, a.status, a.total_hours
		FROM attendances a
		JOIN users u ON u.id = a.user_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, a.check_in_time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}
	defer rows.Close()

	result := []report.Row{}
	for rows.Next() {
		var row report.Row
		var date time.Time
		var hours decimal.NullDecimal
		if err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.Name,
			&row.Email,
			&row.EmployeeID,
			&row.Department,
			&date,
			&row.CheckInTime,
			&row.CheckOutTime,
			&row.Status,
			&hours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		row.Date = date.Format(attendance.DateLayout)
		row.TotalHours = hoursPtr(hours)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return result, nil
}
