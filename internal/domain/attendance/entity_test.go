package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2024, 3, 1, hour, minute, second, 0, time.UTC)
}

func TestPolicy_StatusAt(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name string
		t    time.Time
		want Status
	}{
		{"early morning", at(7, 45, 0), StatusPresent},
		{"one minute before cutoff", at(9, 29, 0), StatusPresent},
		{"exactly cutoff", at(9, 30, 0), StatusPresent},
		{"seconds into cutoff minute", at(9, 30, 59), StatusPresent},
		{"one minute after cutoff", at(9, 31, 0), StatusLate},
		{"next hour", at(10, 0, 0), StatusLate},
		{"afternoon", at(14, 5, 0), StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.StatusAt(tt.t))
		})
	}
}

func TestPolicy_StatusAt_CustomCutoff(t *testing.T) {
	p := Policy{LateHour: 8, LateMinute: 0}

	assert.Equal(t, StatusPresent, p.StatusAt(at(8, 0, 30)))
	assert.Equal(t, StatusLate, p.StatusAt(at(8, 1, 0)))
	assert.Equal(t, StatusLate, p.StatusAt(at(9, 0, 0)))
}

func TestTotalHours(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		out  time.Time
		want string
	}{
		{"full day", at(9, 0, 0), at(17, 30, 0), "8.50"},
		{"same instant", at(9, 0, 0), at(9, 0, 0), "0.00"},
		{"twenty minutes", at(9, 0, 0), at(9, 20, 0), "0.33"},
		{"rounds half up", at(9, 0, 0), at(9, 0, 18), "0.01"},
		{"below half a hundredth", at(9, 0, 0), at(9, 0, 17), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalHours(tt.in, tt.out).StringFixed(2))
		})
	}
}

func TestToResponse(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	out := at(10, 30, 0)
	hours := TotalHours(at(2, 0, 0), out)

	resp := ToResponse(Attendance{
		ID:           "a1",
		UserID:       "u1",
		Date:         "2024-03-01",
		CheckInTime:  at(2, 0, 0),
		CheckOutTime: &out,
		Status:       StatusPresent,
		TotalHours:   &hours,
	}, loc)

	assert.Equal(t, "2024-03-01T09:00:00+07:00", resp.CheckInTime)
	if assert.NotNil(t, resp.CheckOutTime) {
		assert.Equal(t, "2024-03-01T17:30:00+07:00", *resp.CheckOutTime)
	}
	if assert.NotNil(t, resp.TotalHours) {
		assert.Equal(t, "8.50", *resp.TotalHours)
	}
	assert.Equal(t, "Present", resp.Status)

	open := ToResponse(Attendance{CheckInTime: at(2, 0, 0)}, loc)
	assert.Nil(t, open.CheckOutTime)
	assert.Nil(t, open.TotalHours)
}
