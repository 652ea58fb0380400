package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey_UsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC on Jan 31 is already Feb 1 in UTC+7
	instant := time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-31", DateKey(instant, time.UTC))
	assert.Equal(t, "2024-02-01", DateKey(instant, jakarta))
}

func TestStartOfMonth(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	instant := time.Date(2024, 3, 15, 10, 45, 0, 0, loc)

	got := StartOfMonth(instant, loc)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), got)
	assert.Equal(t, "2024-03-01", DateKey(got, loc))
}

func TestFixed(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	c := &Fixed{At: time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), Loc: loc}

	assert.Equal(t, 9, c.Now().Hour())
	assert.Equal(t, loc, c.Location())

	c.Set(time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC))
	assert.Equal(t, 10, c.Now().Hour())

	var zero Fixed
	assert.Equal(t, time.UTC, zero.Location())
}
