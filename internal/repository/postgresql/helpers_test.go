package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// Helper untuk membuat user untuk testing
func createTestUser(t *testing.T, db *database.DB, name, email string, role user.Role, employeeID *string) user.User {
	t.Helper()
	u, err := postgresql.NewUserRepository(db).Create(context.Background(), user.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold",
		Role:         role,
		EmployeeID:   employeeID,
	})
	require.NoError(t, err)
	return u
}

func createTestAttendance(t *testing.T, db *database.DB, userID, date string, checkIn time.Time, status attendance.Status) attendance.Attendance {
	t.Helper()
	a, err := postgresql.NewAttendanceRepository(db).Create(context.Background(), attendance.Attendance{
		UserID:      userID,
		Date:        date,
		CheckInTime: checkIn,
		Status:      status,
	})
	require.NoError(t, err)
	return a
}
