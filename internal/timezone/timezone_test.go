package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC).In(loc)

	_, offset := now.Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
	assert.True(t, IsValid("UTC"))
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 6, 10, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, at, Fixed(at)())
}

func TestClockIn_UsesLocation(t *testing.T) {
	now := ClockIn("UTC")()
	assert.Equal(t, time.UTC, now.Location())
}
