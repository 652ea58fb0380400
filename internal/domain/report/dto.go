package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// AllEmployees is the employee filter value that disables filtering.
const AllEmployees = "all"

// Filter narrows a report. Dates are inclusive YYYY-MM-DD bounds and
// EmployeeID matches either the employee code or the user id.
type Filter struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	EmployeeID string `json:"employee_id"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if len(errs) == 0 && f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if len(f.EmployeeID) > 64 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not exceed 64 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HasEmployee reports whether the filter selects a single employee.
func (f *Filter) HasEmployee() bool {
	return f.EmployeeID != "" && f.EmployeeID != AllEmployees
}

type RowResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	EmployeeID   *string `json:"employee_id"`
	Department   *string `json:"department"`
	Date         string  `json:"date"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Status       string  `json:"status"`
	TotalHours   *string `json:"total_hours"`
}

func ToRowResponse(r Row, loc *time.Location) RowResponse {
	resp := RowResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Email:       r.Email,
		EmployeeID:  r.EmployeeID,
		Department:  r.Department,
		Date:        r.Date,
		CheckInTime: r.CheckInTime.In(loc).Format(time.RFC3339),
		Status:      string(r.Status),
	}
	if r.CheckOutTime != nil {
		out := r.CheckOutTime.In(loc).Format(time.RFC3339)
		resp.CheckOutTime = &out
	}
	if r.TotalHours != nil {
		hours := r.TotalHours.StringFixed(2)
		resp.TotalHours = &hours
	}
	return resp
}

// TodayStatusResponse is the roster of everyone who checked in today.
type TodayStatusResponse struct {
	Date    string        `json:"date"`
	Total   int           `json:"total"`
	Late    int           `json:"late"`
	Records []RowResponse `json:"records"`
}

func countLate(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Status == attendance.StatusLate {
			n++
		}
	}
	return n
}

func NewTodayStatusResponse(date string, rows []Row, loc *time.Location) TodayStatusResponse {
	records := make([]RowResponse, 0, len(rows))
	for _, r := range rows {
		records = append(records, ToRowResponse(r, loc))
	}
	return TodayStatusResponse{
		Date:    date,
		Total:   len(rows),
		Late:    countLate(rows),
		Records: records,
	}
}
