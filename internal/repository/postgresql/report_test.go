package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database/dbtest"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_ListFiltered(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := postgresql.NewReportRepository(db)

	jane := createTestUser(t, db, "Jane", "jane@example.com", user.RoleEmployee, strPtr("EMP001"))
	john := createTestUser(t, db, "John", "john@example.com", user.RoleEmployee, nil)

	day := func(d int) time.Time { return time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC) }
	createTestAttendance(t, db, jane.ID, "2026-03-01", day(1), attendance.StatusPresent)
	createTestAttendance(t, db, jane.ID, "2026-03-02", day(2), attendance.StatusLate)
	createTestAttendance(t, db, john.ID, "2026-03-02", day(2).Add(-time.Hour), attendance.StatusPresent)
	createTestAttendance(t, db, john.ID, "2026-03-04", day(4), attendance.StatusPresent)

	t.Run("no filter", func(t *testing.T) {
		rows, err := repo.ListFiltered(ctx, report.Filter{})
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "2026-03-04", rows[0].Date)
		// same day ordered by check-in, latest first
		assert.Equal(t, "Jane", rows[1].Name)
		assert.Equal(t, "John", rows[2].Name)
		assert.Equal(t, "2026-03-01", rows[3].Date)
	})

	t.Run("inclusive date bounds", func(t *testing.T) {
		rows, err := repo.ListFiltered(ctx, report.Filter{StartDate: "2026-03-02", EndDate: "2026-03-02"})
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("by employee code", func(t *testing.T) {
		rows, err := repo.ListFiltered(ctx, report.Filter{EmployeeID: "EMP001"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, r := range rows {
			assert.Equal(t, jane.ID, r.UserID)
			require.NotNil(t, r.EmployeeID)
			assert.Equal(t, "EMP001", *r.EmployeeID)
		}
	})

	t.Run("by user id", func(t *testing.T) {
		rows, err := repo.ListFiltered(ctx, report.Filter{EmployeeID: john.ID})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Nil(t, rows[0].EmployeeID)
		assert.Equal(t, "john@example.com", rows[0].Email)
	})

	t.Run("all means everyone", func(t *testing.T) {
		rows, err := repo.ListFiltered(ctx, report.Filter{EmployeeID: report.AllEmployees, StartDate: "2026-03-02"})
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("unknown employee", func(t *testing.T) {
		rows, err := repo.ListFiltered(ctx, report.Filter{EmployeeID: "not-a-uuid"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
