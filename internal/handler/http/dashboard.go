package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetEmployeeDashboard returns the caller's monthly summary
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
	// GetManagerDashboard returns today's headcount figures
	GetManagerDashboard(w http.ResponseWriter, r *http.Request)
	// GetMonthlySummary returns the company-wide monthly summary
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetEmployeeDashboard handles GET /dashboard/employee
func (h *dashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetEmployeeDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetManagerDashboard handles GET /dashboard/manager
func (h *dashboardHandlerImpl) GetManagerDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetManagerDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlySummary handles GET /dashboard/manager/monthly
func (h *dashboardHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := queryParam(r.URL.Query(), "employee_id", "employeeId")

	result, err := h.dashboardService.GetMonthlySummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
