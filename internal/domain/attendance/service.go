package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// The acting user is read from the JWT claims in ctx.
type AttendanceService interface {
	// CheckIn opens today's record for the caller
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut closes today's record for the caller
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyHistory lists all of the caller's records, newest first
	GetMyHistory(ctx context.Context) ([]AttendanceResponse, error)

	// GetToday returns today's record for the caller, nil when there is none
	GetToday(ctx context.Context) (*AttendanceResponse, error)
}
