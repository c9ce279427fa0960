package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_Fallback(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.False(t, IsValid(""))
}

func TestClock_Boundaries(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)
	c := Fixed(now, loc)

	assert.Equal(t, 12, c.Now().Hour())

	in := time.Date(2026, 5, 20, 13, 47, 12, 99, time.UTC)
	assert.Equal(t, time.Date(2026, 5, 20, 10, 0, 0, 0, loc), c.StartOfHour(in))
	assert.Equal(t, time.Date(2026, 5, 20, 0, 0, 0, 0, loc), c.StartOfDay(in))
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, loc), c.Date(2026, 5, 32))
}
