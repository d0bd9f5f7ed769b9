package helpers

import (
	"time"

	"github.com/arda/campusconnect/internal/app/models"
)

// EventTiming is the derived, never-persisted view of an event's schedule.
type EventTiming struct {
	// TimeRemaining is the duration until the event starts, in milliseconds;
	// nil once the start has passed.
	TimeRemaining *int64
	IsUpcoming    bool
	IsPast        bool
}

// ComputeEventTiming derives the timing fields for an event against now.
func ComputeEventTiming(event *models.Event, now time.Time) EventTiming {
	remaining := event.StartsAt().Sub(now)
	if remaining <= 0 {
		return EventTiming{IsPast: true}
	}
	ms := remaining.Milliseconds()
	return EventTiming{TimeRemaining: &ms, IsUpcoming: true}
}

// ValidEventDate reports whether s parses as an event date (YYYY-MM-DD).
func ValidEventDate(s string) bool {
	_, err := time.Parse(models.EventDateLayout, s)
	return err == nil
}

// ValidEventTime reports whether s parses as an event time (HH:MM, 24h).
func ValidEventTime(s string) bool {
	_, err := time.Parse(models.EventTimeLayout, s)
	return err == nil
}
