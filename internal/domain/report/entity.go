package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Row is an attendance record joined with the owning user's identity.
type Row struct {
	ID           string
	UserID       string
	Name         string
	Email        string
	EmployeeID   *string
	Department   *string
	Date         string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       attendance.Status
	TotalHours   *decimal.Decimal
}
