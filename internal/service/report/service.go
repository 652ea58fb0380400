package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/clock"
)

const (
	notAvailable    = "N/A"
	clockTimeLayout = "15:04:05"
)

// CSVHeader is the column order of the attendance export.
var CSVHeader = []string{"EmployeeID", "Name", "Email", "Date", "Status", "CheckIn", "CheckOut", "TotalHours"}

type ReportServiceImpl struct {
	report.ReportRepository
	clock clock.Clock
}

func NewReportService(repo report.ReportRepository, clk clock.Clock) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: repo,
		clock:            clk,
	}
}

func (s *ReportServiceImpl) list(ctx context.Context, filter report.Filter) ([]report.Row, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.ListFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list report rows: %w", err)
	}
	return rows, nil
}

// GetReport implements report.ReportService.
func (s *ReportServiceImpl) GetReport(ctx context.Context, filter report.Filter) ([]report.RowResponse, error) {
	rows, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	loc := s.clock.Location()
	resp := make([]report.RowResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, report.ToRowResponse(r, loc))
	}
	return resp, nil
}

// GetTodayStatus implements report.ReportService.
func (s *ReportServiceImpl) GetTodayStatus(ctx context.Context) (report.TodayStatusResponse, error) {
	loc := s.clock.Location()
	today := clock.DateKey(s.clock.Now(), loc)

	rows, err := s.list(ctx, report.Filter{StartDate: today, EndDate: today})
	if err != nil {
		return report.TodayStatusResponse{}, err
	}
	return report.NewTodayStatusResponse(today, rows, loc), nil
}

// ExportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, filter report.Filter, w io.Writer) error {
	rows, err := s.list(ctx, filter)
	if err != nil {
		return err
	}
	return WriteCSV(w, rows, s.clock.Location())
}

// WriteCSV renders rows in export format. Times are wall clock in loc,
// missing employee ids and check-outs read N/A and missing hours stay empty.
func WriteCSV(w io.Writer, rows []report.Row, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range rows {
		employeeID := notAvailable
		if r.EmployeeID != nil && *r.EmployeeID != "" {
			employeeID = *r.EmployeeID
		}
		checkOut := notAvailable
		if r.CheckOutTime != nil {
			checkOut = r.CheckOutTime.In(loc).Format(clockTimeLayout)
		}
		totalHours := ""
		if r.TotalHours != nil {
			totalHours = r.TotalHours.StringFixed(2)
		}

		record := []string{
			employeeID,
			r.Name,
			r.Email,
			r.Date,
			string(r.Status),
			r.CheckInTime.In(loc).Format(clockTimeLayout),
			checkOut,
			totalHours,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
