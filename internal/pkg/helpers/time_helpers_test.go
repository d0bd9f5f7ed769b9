package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arda/campusconnect/internal/app/models"
)

func eventAt(t *testing.T, start time.Time) *models.Event {
	t.Helper()
	return &models.Event{
		Date: start.Format(models.EventDateLayout),
		Time: start.Format(models.EventTimeLayout),
	}
}

func TestComputeEventTiming_Upcoming(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)
	event := eventAt(t, now.Add(2*time.Hour))

	timing := ComputeEventTiming(event, now)

	require.NotNil(t, timing.TimeRemaining)
	assert.Equal(t, (2 * time.Hour).Milliseconds(), *timing.TimeRemaining)
	assert.True(t, timing.IsUpcoming)
	assert.False(t, timing.IsPast)
}

func TestComputeEventTiming_Past(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)
	event := eventAt(t, now.Add(-time.Hour))

	timing := ComputeEventTiming(event, now)

	assert.Nil(t, timing.TimeRemaining)
	assert.False(t, timing.IsUpcoming)
	assert.True(t, timing.IsPast)
}

func TestValidEventDate(t *testing.T) {
	assert.True(t, ValidEventDate("2026-05-01"))
	assert.False(t, ValidEventDate("01-05-2026"))
	assert.False(t, ValidEventDate("2026-13-40"))
	assert.False(t, ValidEventDate(""))
}

func TestValidEventTime(t *testing.T) {
	assert.True(t, ValidEventTime("09:30"))
	assert.True(t, ValidEventTime("23:59"))
	assert.False(t, ValidEventTime("9:30 PM"))
	assert.False(t, ValidEventTime("25:00"))
}
