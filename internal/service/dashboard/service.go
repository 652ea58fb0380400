package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	user.UserRepository
	clock clock.Clock
}

func NewDashboardService(repo dashboard.DashboardRepository, userRepo user.UserRepository, clk clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		UserRepository:      userRepo,
		clock:               clk,
	}
}

// monthBounds returns the YYYY-MM label and the first day of the current month
func (s *DashboardServiceImpl) monthBounds() (month string, since string) {
	loc := s.clock.Location()
	start := clock.StartOfMonth(s.clock.Now(), loc)
	return start.Format("2006-01"), clock.DateKey(start, loc)
}

func (s *DashboardServiceImpl) summary(ctx context.Context, filter dashboard.SummaryFilter, month string) (dashboard.MonthlySummaryResponse, error) {
	stats, err := s.GetStatusSummary(ctx, filter)
	if err != nil {
		return dashboard.MonthlySummaryResponse{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}
	return dashboard.NewMonthlySummaryResponse(month, filter.Since, stats), nil
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context) (dashboard.MonthlySummaryResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return dashboard.MonthlySummaryResponse{}, err
	}

	month, since := s.monthBounds()
	return s.summary(ctx, dashboard.SummaryFilter{Since: since, UserID: claims.UserID}, month)
}

// GetMonthlySummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetMonthlySummary(ctx context.Context, employeeID string) (dashboard.MonthlySummaryResponse, error) {
	if employeeID == "all" {
		employeeID = ""
	}
	month, since := s.monthBounds()
	return s.summary(ctx, dashboard.SummaryFilter{Since: since, EmployeeID: employeeID}, month)
}

// GetManagerDashboard returns today's figures using parallel goroutines
func (s *DashboardServiceImpl) GetManagerDashboard(ctx context.Context) (dashboard.ManagerDashboardResponse, error) {
	today := clock.DateKey(s.clock.Now(), s.clock.Location())

	var (
		totalEmployees int64
		counts         dashboard.DayCounts
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employees on the payroll (role = employee)
	g.Go(func() error {
		n, err := s.CountByRole(gCtx, user.RoleEmployee)
		if err != nil {
			return err
		}
		totalEmployees = n
		return nil
	})

	// 2. Today's records, all statuses, and the late subset (1 query)
	g.Go(func() error {
		c, err := s.GetDayCounts(gCtx, today)
		if err != nil {
			return err
		}
		counts = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to build manager dashboard: %w", err)
	}

	return dashboard.ManagerDashboardResponse{
		Date:           today,
		TotalEmployees: totalEmployees,
		PresentCount:   counts.Total,
		LateCount:      counts.Late,
	}, nil
}
