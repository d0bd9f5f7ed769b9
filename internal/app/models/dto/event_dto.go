package dto

import (
	"github.com/arda/campusconnect/internal/app/models"
)

// CreateEventRequest carries a new event. Events arrive as multipart forms
// because of the optional image, so fields bind by form tag.
type CreateEventRequest struct {
	Title                string `form:"title" json:"title"`
	Description          string `form:"description" json:"description"`
	Date                 string `form:"date" json:"date"` // YYYY-MM-DD
	Time                 string `form:"time" json:"time"` // HH:MM
	Venue                string `form:"venue" json:"venue"`
	Category             string `form:"category" json:"category"`
	Organizer            string `form:"organizer" json:"organizer"`
	MaxParticipants      *int   `form:"maxParticipants" json:"maxParticipants"`
	RegistrationRequired bool   `form:"registrationRequired" json:"registrationRequired"`
}

// UpdateEventRequest carries event changes; participants, author and
// createdAt are preserved server-side.
type UpdateEventRequest = CreateEventRequest

// EventFilter selects events in List.
type EventFilter struct {
	Category string `form:"category"`
	Upcoming bool   `form:"upcoming"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
}

// EventResponse is an event enriched with the derived schedule fields.
// The derived trio is computed per read and never persisted.
type EventResponse struct {
	models.Event
	TimeRemaining *int64 `json:"timeRemaining"` // Milliseconds; null once started
	IsUpcoming    bool   `json:"isUpcoming"`
	IsPast        bool   `json:"isPast"`
}

// EventData wraps a single event response.
type EventData struct {
	Event EventResponse `json:"event"`
}

// EventListData is the payload for the event list endpoint.
type EventListData struct {
	Events     []EventResponse `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}
