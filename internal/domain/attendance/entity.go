package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half-day"
)

// DateLayout is the canonical calendar-day key. Being fixed width, keys
// compare lexically in chronological order.
const DateLayout = "2006-01-02"

// Attendance is the single record a user owns for one calendar day.
type Attendance struct {
	ID           string
	UserID       string
	Date         string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       Status
	TotalHours   *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsCheckedOut reports whether the record already has a check-out time.
func (a *Attendance) IsCheckedOut() bool {
	return a.CheckOutTime != nil
}

var millisPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// TotalHours returns the elapsed time between in and out in hours, rounded to
// two decimals.
func TotalHours(in, out time.Time) decimal.Decimal {
	ms := decimal.NewFromInt(out.Sub(in).Milliseconds())
	return ms.Div(millisPerHour).Round(2)
}

// Policy decides the status of a check-in and how repeated check-outs behave.
type Policy struct {
	LateHour               int
	LateMinute             int
	AllowCheckoutOverwrite bool
}

func DefaultPolicy() Policy {
	return Policy{LateHour: 9, LateMinute: 30}
}

// StatusAt classifies a check-in by its wall clock. Only whole minutes count:
// 09:30:59 is still on time with the default cutoff.
func (p Policy) StatusAt(t time.Time) Status {
	hour, minute := t.Hour(), t.Minute()
	if hour > p.LateHour || (hour == p.LateHour && minute > p.LateMinute) {
		return StatusLate
	}
	return StatusPresent
}
