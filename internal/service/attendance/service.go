package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/sse"
)

// Publisher receives check-in and check-out events
type Publisher interface {
	Publish(topic string, event sse.Event)
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock     clock.Clock
	policy    attendance.Policy
	publisher Publisher
}

type Option func(*AttendanceServiceImpl)

// WithPublisher streams every recorded check-in and check-out to p.
func WithPublisher(p Publisher) Option {
	return func(s *AttendanceServiceImpl) {
		s.publisher = p
	}
}

func NewAttendanceService(repo attendance.AttendanceRepository, clk clock.Clock, policy attendance.Policy, opts ...Option) attendance.AttendanceService {
	s := &AttendanceServiceImpl{
		AttendanceRepository: repo,
		clock:                clk,
		policy:               policy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AttendanceServiceImpl) publish(name string, resp attendance.AttendanceResponse) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(attendance.TopicAttendance, sse.Event{Name: name, Data: resp})
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	loc := s.clock.Location()
	now := s.clock.Now().In(loc)

	record := attendance.Attendance{
		UserID:      claims.UserID,
		Date:        clock.DateKey(now, loc),
		CheckInTime: now,
		Status:      s.policy.StatusAt(now),
	}

	// the (user_id, date) constraint decides duplicates, concurrent requests included
	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	slog.Info("Check-in recorded", "user_id", created.UserID, "date", created.Date, "status", created.Status)
	resp := attendance.ToResponse(created, loc)
	s.publish(attendance.EventCheckedIn, resp)
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	loc := s.clock.Location()
	now := s.clock.Now().In(loc)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, claims.UserID, clock.DateKey(now, loc))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if record.IsCheckedOut() && !s.policy.AllowCheckoutOverwrite {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if now.Before(record.CheckInTime) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	hours := attendance.TotalHours(record.CheckInTime, now)
	updated, err := s.AttendanceRepository.CheckOut(ctx, record.ID, now, hours, s.policy.AllowCheckoutOverwrite)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrAlreadyCheckedOut), errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
			return attendance.AttendanceResponse{}, err
		case errors.Is(err, attendance.ErrAttendanceNotFound):
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check out: %w", err)
	}

	slog.Info("Check-out recorded", "user_id", updated.UserID, "date", updated.Date, "total_hours", hours.StringFixed(2))
	resp := attendance.ToResponse(updated, loc)
	s.publish(attendance.EventCheckedOut, resp)
	return resp, nil
}

// GetMyHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyHistory(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}
	return attendance.ToResponses(records, s.clock.Location()), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	loc := s.clock.Location()
	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, claims.UserID, clock.DateKey(s.clock.Now(), loc))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	resp := attendance.ToResponse(record, loc)
	return &resp, nil
}
