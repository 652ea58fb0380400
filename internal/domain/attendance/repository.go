package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. A second record for the same user and date
	// fails with ErrAlreadyCheckedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByUserAndDate returns ErrAttendanceNotFound when the user has no record for date
	GetByUserAndDate(ctx context.Context, userID string, date string) (Attendance, error)

	// CheckOut stores check-out time and total hours. Unless overwrite is set,
	// only a record without a check-out is updated; otherwise ErrAlreadyCheckedOut.
	CheckOut(ctx context.Context, id string, checkOut time.Time, totalHours decimal.Decimal, overwrite bool) (Attendance, error)

	// ListByUser returns every record of the user, newest date first
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
}
