package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
)

const exportFilename = "attendance_report.csv"

type ReportHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	GetTodayStatus(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// queryParam reads a snake_case parameter, falling back to its camelCase alias.
func queryParam(q url.Values, name, alias string) string {
	if v := q.Get(name); v != "" {
		return v
	}
	return q.Get(alias)
}

func filterFromQuery(r *http.Request) report.Filter {
	q := r.URL.Query()
	return report.Filter{
		StartDate:  queryParam(q, "start_date", "startDate"),
		EndDate:    queryParam(q, "end_date", "endDate"),
		EmployeeID: queryParam(q, "employee_id", "employeeId"),
	}
}

// GetReport handles GET /attendance/reports
func (h *reportHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetReport(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV handles GET /attendance/export. The body is buffered so that a
// failed query still yields a JSON error instead of a truncated file.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.reportService.ExportCSV(r.Context(), filterFromQuery(r), &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSV(w, exportFilename)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write CSV export", "error", err)
	}
}

// GetAll handles GET /attendance/all
func (h *reportHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetReport(r.Context(), report.Filter{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTodayStatus handles GET /attendance/today-status
func (h *reportHandlerImpl) GetTodayStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetTodayStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
