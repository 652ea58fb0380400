package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportRepo applies the filter the way the SQL does, over rows kept in
// newest-first order.
type fakeReportRepo struct {
	rows       []report.Row
	lastFilter report.Filter
	calls      int
}

func (f *fakeReportRepo) ListFiltered(_ context.Context, filter report.Filter) ([]report.Row, error) {
	f.calls++
	f.lastFilter = filter
	var out []report.Row
	for _, r := range f.rows {
		if filter.StartDate != "" && r.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && r.Date > filter.EndDate {
			continue
		}
		if filter.HasEmployee() {
			code := ""
			if r.EmployeeID != nil {
				code = *r.EmployeeID
			}
			if code != filter.EmployeeID && r.UserID != filter.EmployeeID {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func hours(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func utc(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func sampleRows() []report.Row {
	out := utc(31, 17, 30)
	return []report.Row{
		{ID: "r4", UserID: "u1", Name: "Jane", Email: "jane@example.com", EmployeeID: strPtr("EMP-1"), Date: "2024-02-01", CheckInTime: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		{ID: "r3", UserID: "u1", Name: "Jane", Email: "jane@example.com", EmployeeID: strPtr("EMP-1"), Date: "2024-01-31", CheckInTime: utc(31, 9, 0), CheckOutTime: &out, Status: attendance.StatusPresent, TotalHours: hours("8.5")},
		{ID: "r2", UserID: "u2", Name: "Bob", Email: "bob@example.com", Date: "2024-01-15", CheckInTime: utc(15, 9, 45), Status: attendance.StatusLate},
		{ID: "r1", UserID: "u1", Name: "Jane", Email: "jane@example.com", EmployeeID: strPtr("EMP-1"), Date: "2024-01-01", CheckInTime: utc(1, 9, 0), Status: attendance.StatusPresent},
		{ID: "r0", UserID: "u2", Name: "Bob", Email: "bob@example.com", Date: "2023-12-31", CheckInTime: time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
	}
}

func newTestService(repo report.ReportRepository) report.ReportService {
	return NewReportService(repo, &clock.Fixed{At: utc(31, 12, 0), Loc: time.UTC})
}

func TestGetReport_DateRangeInclusive(t *testing.T) {
	svc := newTestService(&fakeReportRepo{rows: sampleRows()})

	rows, err := svc.GetReport(context.Background(), report.Filter{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-01-31", rows[0].Date)
	assert.Equal(t, "2024-01-15", rows[1].Date)
	assert.Equal(t, "2024-01-01", rows[2].Date)
	assert.Equal(t, "8.50", *rows[0].TotalHours)
}

func TestGetReport_EmployeeFilter(t *testing.T) {
	svc := newTestService(&fakeReportRepo{rows: sampleRows()})

	byCode, err := svc.GetReport(context.Background(), report.Filter{EmployeeID: "EMP-1"})
	require.NoError(t, err)
	assert.Len(t, byCode, 3)

	byUserID, err := svc.GetReport(context.Background(), report.Filter{EmployeeID: "u2"})
	require.NoError(t, err)
	assert.Len(t, byUserID, 2)

	all, err := svc.GetReport(context.Background(), report.Filter{EmployeeID: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestGetReport_InvalidFilter(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows()}
	svc := newTestService(repo)

	_, err := svc.GetReport(context.Background(), report.Filter{StartDate: "01/01/2024"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Zero(t, repo.calls)
}

func TestGetTodayStatus(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows()}
	svc := newTestService(repo)

	resp, err := svc.GetTodayStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", resp.Date)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, report.Filter{StartDate: "2024-01-31", EndDate: "2024-01-31"}, repo.lastFilter)
}

func TestExportCSV(t *testing.T) {
	svc := newTestService(&fakeReportRepo{rows: sampleRows()})

	var buf bytes.Buffer
	err := svc.ExportCSV(context.Background(), report.Filter{StartDate: "2024-01-15", EndDate: "2024-01-31"}, &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"EmployeeID", "Name", "Email", "Date", "Status", "CheckIn", "CheckOut", "TotalHours"}, records[0])
	assert.Equal(t, []string{"EMP-1", "Jane", "jane@example.com", "2024-01-31", "Present", "09:00:00", "17:30:00", "8.50"}, records[1])
	// no employee id, no checkout: placeholders and empty hours
	assert.Equal(t, []string{"N/A", "Bob", "bob@example.com", "2024-01-15", "Late", "09:45:00", "N/A", ""}, records[2])
}

func TestWriteCSV_LocationAndQuoting(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	rows := []report.Row{{
		Name:        "Doe, Jane",
		Email:       "jane@example.com",
		EmployeeID:  strPtr(""),
		Date:        "2024-01-02",
		CheckInTime: time.Date(2024, 1, 2, 2, 5, 9, 0, time.UTC),
		Status:      attendance.StatusPresent,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, loc))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "N/A", records[1][0])
	assert.Equal(t, "Doe, Jane", records[1][1])
	assert.Equal(t, "09:05:09", records[1][5])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, time.UTC))
	assert.Equal(t, "EmployeeID,Name,Email,Date,Status,CheckIn,CheckOut,TotalHours\n", buf.String())
}
