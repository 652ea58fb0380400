package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database/dbtest"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := postgresql.NewDashboardRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jane := createTestUser(t, db, "Jane", "jane@example.com", user.RoleEmployee, strPtr("EMP001"))
	john := createTestUser(t, db, "John", "john@example.com", user.RoleEmployee, nil)

	day := func(d int) time.Time { return time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC) }

	// last month, excluded from March summaries
	createTestAttendance(t, db, jane.ID, "2026-02-27", time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC), attendance.StatusPresent)

	a := createTestAttendance(t, db, jane.ID, "2026-03-02", day(2), attendance.StatusPresent)
	_, err := attendanceRepo.CheckOut(ctx, a.ID, day(2).Add(8*time.Hour), decimal.RequireFromString("8.00"), false)
	require.NoError(t, err)
	b := createTestAttendance(t, db, jane.ID, "2026-03-03", day(3), attendance.StatusLate)
	_, err = attendanceRepo.CheckOut(ctx, b.ID, day(3).Add(90*time.Minute), decimal.RequireFromString("1.50"), false)
	require.NoError(t, err)
	createTestAttendance(t, db, john.ID, "2026-03-03", day(3), attendance.StatusLate)

	t.Run("company-wide summary", func(t *testing.T) {
		s, err := repo.GetStatusSummary(ctx, dashboard.SummaryFilter{Since: "2026-03-01"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), s.Present)
		assert.Equal(t, int64(2), s.Late)
		assert.Equal(t, int64(0), s.Absent)
		assert.Equal(t, int64(0), s.HalfDay)
		assert.Equal(t, "9.50", s.TotalHours.StringFixed(2))
	})

	t.Run("summary for one user", func(t *testing.T) {
		s, err := repo.GetStatusSummary(ctx, dashboard.SummaryFilter{Since: "2026-03-01", UserID: john.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(0), s.Present)
		assert.Equal(t, int64(1), s.Late)
		assert.True(t, s.TotalHours.IsZero())
	})

	t.Run("summary by employee code", func(t *testing.T) {
		s, err := repo.GetStatusSummary(ctx, dashboard.SummaryFilter{Since: "2026-03-01", EmployeeID: "EMP001"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), s.Present)
		assert.Equal(t, int64(1), s.Late)
	})

	t.Run("empty period", func(t *testing.T) {
		s, err := repo.GetStatusSummary(ctx, dashboard.SummaryFilter{Since: "2026-04-01"})
		require.NoError(t, err)
		assert.Equal(t, dashboard.StatusSummary{TotalHours: s.TotalHours}, s)
		assert.True(t, s.TotalHours.IsZero())
	})

	t.Run("day counts", func(t *testing.T) {
		c, err := repo.GetDayCounts(ctx, "2026-03-03")
		require.NoError(t, err)
		assert.Equal(t, dashboard.DayCounts{Total: 2, Late: 2}, c)

		c, err = repo.GetDayCounts(ctx, "2026-03-05")
		require.NoError(t, err)
		assert.Equal(t, dashboard.DayCounts{}, c)
	})
}
