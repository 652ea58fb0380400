package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	attendanceColumns = `id, user_id, date, check_in_time, check_out_time, status, total_hours, created_at, updated_at`

	constraintUserDate      = "attendances_user_date_key"
	constraintCheckoutOrder = "attendances_checkout_after_checkin"
	sqlStateCheckViolation  = "23514"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// dateParam turns a YYYY-MM-DD key into a value pgx encodes as DATE.
func dateParam(key string) (time.Time, error) {
	d, err := time.Parse(attendance.DateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return d, nil
}

func hoursPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var date time.Time
	var hours decimal.NullDecimal
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&date,
		&a.CheckInTime,
		&a.CheckOutTime,
		&a.Status,
		&hours,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	a.Date = date.Format(attendance.DateLayout)
	a.TotalHours = hoursPtr(hours)
	return a, nil
}

func isCheckViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateCheckViolation && pgErr.ConstraintName == constraint
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
		}
		a.ID = id.String()
	}
	date, err := dateParam(a.Date)
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `
		INSERT INTO attendances (id, user_id, date, check_in_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query, a.ID, a.UserID, date, a.CheckInTime, string(a.Status)))
	if err != nil {
		if database.IsUniqueViolation(err, constraintUserDate) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance: %w", err)
	}
	return created, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, dateKey string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	date, err := dateParam(dateKey)
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1 AND date = $2`
	a, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CheckOut(ctx context.Context, id string, checkOut time.Time, totalHours decimal.Decimal, overwrite bool) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out_time = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $1 AND ($4 OR check_out_time IS NULL)
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query, id, checkOut, totalHours, overwrite))
	if err == nil {
		return updated, nil
	}
	if isCheckViolation(err, constraintCheckoutOrder) {
		return attendance.Attendance{}, attendance.ErrCheckOutBeforeCheckIn
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	// no row matched: either the record is gone or someone checked out first
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE id = $1)`, id).Scan(&exists); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check attendance: %w", err)
	}
	if exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1 ORDER BY date DESC`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}
