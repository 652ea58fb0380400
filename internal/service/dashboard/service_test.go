package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	summary     dashboard.StatusSummary
	lastFilter  dashboard.SummaryFilter
	dayCounts   map[string]dashboard.DayCounts
	summaryErr  error
	dayCountErr error
}

func (f *fakeDashboardRepo) GetStatusSummary(_ context.Context, filter dashboard.SummaryFilter) (dashboard.StatusSummary, error) {
	f.lastFilter = filter
	return f.summary, f.summaryErr
}

func (f *fakeDashboardRepo) GetDayCounts(_ context.Context, date string) (dashboard.DayCounts, error) {
	return f.dayCounts[date], f.dayCountErr
}

type fakeUserRepo struct {
	user.UserRepository
	counts map[user.Role]int64
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role user.Role) (int64, error) {
	return f.counts[role], nil
}

func fixedClock() *clock.Fixed {
	return &clock.Fixed{At: time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC), Loc: time.UTC}
}

func TestGetManagerDashboard(t *testing.T) {
	repo := &fakeDashboardRepo{
		dayCounts: map[string]dashboard.DayCounts{
			"2024-03-15": {Total: 7, Late: 2},
			"2024-03-14": {Total: 99, Late: 99},
		},
	}
	users := &fakeUserRepo{counts: map[user.Role]int64{user.RoleEmployee: 10, user.RoleManager: 2}}
	svc := NewDashboardService(repo, users, fixedClock())

	resp, err := svc.GetManagerDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, int64(10), resp.TotalEmployees)
	assert.Equal(t, int64(7), resp.PresentCount)
	assert.Equal(t, int64(2), resp.LateCount)
}

func TestGetManagerDashboard_Error(t *testing.T) {
	repo := &fakeDashboardRepo{dayCountErr: errors.New("db down")}
	users := &fakeUserRepo{counts: map[user.Role]int64{}}
	svc := NewDashboardService(repo, users, fixedClock())

	_, err := svc.GetManagerDashboard(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestGetEmployeeDashboard(t *testing.T) {
	repo := &fakeDashboardRepo{
		summary: dashboard.StatusSummary{
			Present:    8,
			Late:       3,
			TotalHours: decimal.RequireFromString("87.5"),
		},
	}
	svc := NewDashboardService(repo, &fakeUserRepo{}, fixedClock())

	ctx, err := jwt.ContextWithClaims(context.Background(), jwt.Claims{UserID: "u1", Role: "employee"})
	require.NoError(t, err)

	resp, err := svc.GetEmployeeDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03", resp.Month)
	assert.Equal(t, "2024-03-01", resp.Since)
	assert.Equal(t, int64(8), resp.Present)
	assert.Equal(t, int64(3), resp.Late)
	assert.Equal(t, int64(0), resp.Absent)
	assert.Equal(t, "87.50", resp.TotalHours)

	assert.Equal(t, dashboard.SummaryFilter{Since: "2024-03-01", UserID: "u1"}, repo.lastFilter)
}

func TestGetEmployeeDashboard_MonthInConfiguredLocation(t *testing.T) {
	// 20:00 UTC on Mar 31 is already April in Jakarta
	loc := time.FixedZone("WIB", 7*3600)
	clk := &clock.Fixed{At: time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC), Loc: loc}
	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(repo, &fakeUserRepo{}, clk)

	ctx, err := jwt.ContextWithClaims(context.Background(), jwt.Claims{UserID: "u1"})
	require.NoError(t, err)

	resp, err := svc.GetEmployeeDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-04", resp.Month)
	assert.Equal(t, "2024-04-01", repo.lastFilter.Since)
	assert.Equal(t, "0.00", resp.TotalHours)
}

func TestGetMonthlySummary_EmployeeFilter(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(repo, &fakeUserRepo{}, fixedClock())

	_, err := svc.GetMonthlySummary(context.Background(), "EMP-001")
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", repo.lastFilter.EmployeeID)
	assert.Empty(t, repo.lastFilter.UserID)

	_, err = svc.GetMonthlySummary(context.Background(), "all")
	require.NoError(t, err)
	assert.Empty(t, repo.lastFilter.EmployeeID)
}
