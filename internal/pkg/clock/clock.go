package clock

import "time"

// Clock is the source of "now" for the attendance domain. Day keys and the
// late cutoff are evaluated in Location(), never in the process timezone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

// New returns a wall clock that reports time in loc.
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c systemClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a single instant. Used by tests and tooling.
type Fixed struct {
	At  time.Time
	Loc *time.Location
}

func (f *Fixed) Now() time.Time {
	return f.At.In(f.Location())
}

func (f *Fixed) Location() *time.Location {
	if f.Loc == nil {
		return time.UTC
	}
	return f.Loc
}

// Set moves the clock to t.
func (f *Fixed) Set(t time.Time) {
	f.At = t
}

// DateKey returns the YYYY-MM-DD calendar day of t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// StartOfMonth returns midnight of the first day of t's month in loc.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}
