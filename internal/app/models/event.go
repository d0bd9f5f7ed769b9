package models

import (
	"time"
)

// EventCategory classifies an event.
type EventCategory string

const (
	EventCategoryAcademic EventCategory = "academic"
	EventCategoryCultural EventCategory = "cultural"
	EventCategorySports   EventCategory = "sports"
	EventCategoryWorkshop EventCategory = "workshop"
	EventCategorySeminar  EventCategory = "seminar"
)

// EventCategories lists the accepted category values.
var EventCategories = []EventCategory{
	EventCategoryAcademic,
	EventCategoryCultural,
	EventCategorySports,
	EventCategoryWorkshop,
	EventCategorySeminar,
}

// Wire formats for the event date and time fields.
const (
	EventDateLayout = "2006-01-02"
	EventTimeLayout = "15:04"
)

// Participant records one student's registration for an event.
// A user appears at most once in an event's participant list.
type Participant struct {
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Event is a campus happening, optionally with seat-limited registration.
type Event struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Date                 string        `json:"date"` // EventDateLayout
	Time                 string        `json:"time"` // EventTimeLayout
	Venue                string        `json:"venue"`
	Category             EventCategory `json:"category"`
	Organizer            string        `json:"organizer"`
	MaxParticipants      *int          `json:"maxParticipants,omitempty"`
	RegistrationRequired bool          `json:"registrationRequired"`
	Image                string        `json:"image,omitempty"`
	Author               AuthorRef     `json:"author"`
	Participants         []Participant `json:"participants"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// StartsAt combines the date and time fields into the event start instant.
// The zero time is returned when either field is malformed.
func (e *Event) StartsAt() time.Time {
	t, err := time.ParseInLocation(EventDateLayout+"T"+EventTimeLayout, e.Date+"T"+e.Time, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsFull reports whether the participant limit has been reached.
func (e *Event) IsFull() bool {
	return e.MaxParticipants != nil && len(e.Participants) >= *e.MaxParticipants
}

// HasParticipant reports whether the user is already registered.
func (e *Event) HasParticipant(userID string) bool {
	for _, p := range e.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
