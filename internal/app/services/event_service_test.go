package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/arda/campusconnect/internal/app/auth"
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/repositories"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/filestorage"
)

func newEventService(t *testing.T) (EventService, *repositories.EventRepository) {
	t.Helper()
	repo := repositories.NewEventRepository(t.TempDir())
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewEventService(repo, appAuth.NewAuthorizationService(), storage, 10*1024*1024, []string{"jpg", "jpeg", "png"})
	return svc, repo
}

func seedEvent(t *testing.T, repo *repositories.EventRepository, e models.Event) models.Event {
	t.Helper()
	if e.Title == "" {
		e.Title = "Seeded event title"
	}
	if e.Description == "" {
		e.Description = "Seeded event description"
	}
	if e.Date == "" {
		start := time.Now().Add(48 * time.Hour)
		e.Date = start.Format(models.EventDateLayout)
		e.Time = start.Format(models.EventTimeLayout)
	}
	if e.Category == "" {
		e.Category = models.EventCategoryWorkshop
	}
	if e.Participants == nil {
		e.Participants = []models.Participant{}
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, repo.Insert(e))
	return e
}

func validEventRequest() *dto.CreateEventRequest {
	start := time.Now().Add(72 * time.Hour)
	return &dto.CreateEventRequest{
		Title:                "Annual robotics workshop",
		Description:          "A hands-on workshop on building small robots.",
		Date:                 start.Format(models.EventDateLayout),
		Time:                 start.Format(models.EventTimeLayout),
		Venue:                "Main auditorium",
		Category:             "workshop",
		Organizer:            "Robotics Club",
		RegistrationRequired: true,
	}
}

func TestEventService_Create(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.Create(facultyActor, validEventRequest(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, facultyActor.ID, event.Author.ID)
	assert.Empty(t, event.Participants)
	assert.True(t, event.IsUpcoming)
	require.NotNil(t, event.TimeRemaining)
	assert.Greater(t, *event.TimeRemaining, int64(0))
}

func TestEventService_Create_Validation(t *testing.T) {
	svc, _ := newEventService(t)

	req := validEventRequest()
	req.Date = "01/05/2026"
	req.Time = "9 PM"

	_, err := svc.Create(facultyActor, req, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEventService_List_UpcomingFilter(t *testing.T) {
	svc, repo := newEventService(t)

	past := time.Now().Add(-48 * time.Hour)
	seedEvent(t, repo, models.Event{
		ID:   "e-past",
		Date: past.Format(models.EventDateLayout),
		Time: past.Format(models.EventTimeLayout),
	})
	seedEvent(t, repo, models.Event{ID: "e-future"})

	all, err := svc.List(&dto.EventFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, all.Events, 2)
	assert.Equal(t, "e-past", all.Events[0].ID, "soonest first")
	assert.True(t, all.Events[0].IsPast)

	upcoming, err := svc.List(&dto.EventFilter{Upcoming: true, Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, upcoming.Events, 1)
	assert.Equal(t, "e-future", upcoming.Events[0].ID)
}

func TestEventService_Register_StateMachine(t *testing.T) {
	svc, repo := newEventService(t)

	one := 1
	seedEvent(t, repo, models.Event{ID: "e-open", RegistrationRequired: true, MaxParticipants: &one})
	seedEvent(t, repo, models.Event{ID: "e-walkin", RegistrationRequired: false})

	past := time.Now().Add(-time.Hour)
	seedEvent(t, repo, models.Event{
		ID:                   "e-started",
		RegistrationRequired: true,
		Date:                 past.Format(models.EventDateLayout),
		Time:                 past.Format(models.EventTimeLayout),
	})

	// Registration not required
	_, err := svc.Register(studentActor, "e-walkin")
	assert.ErrorIs(t, err, apperrors.ErrRegistrationNotNeeded)

	// Already started
	_, err = svc.Register(studentActor, "e-started")
	assert.ErrorIs(t, err, apperrors.ErrEventAlreadyStarted)

	// First registration succeeds and records a snapshot
	event, err := svc.Register(studentActor, "e-open")
	require.NoError(t, err)
	require.Len(t, event.Participants, 1)
	assert.Equal(t, studentActor.ID, event.Participants[0].UserID)
	assert.Equal(t, studentActor.Name, event.Participants[0].Name)

	// Duplicate registration
	_, err = svc.Register(studentActor, "e-open")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)

	// Capacity reached for a second student
	other := &models.User{ID: "student-2", Name: "Other Student", Role: models.RoleStudent}
	_, err = svc.Register(other, "e-open")
	assert.ErrorIs(t, err, apperrors.ErrEventFull)
}

func TestEventService_Unregister(t *testing.T) {
	svc, repo := newEventService(t)
	seedEvent(t, repo, models.Event{ID: "e-open", RegistrationRequired: true})

	_, err := svc.Register(studentActor, "e-open")
	require.NoError(t, err)

	event, err := svc.Unregister(studentActor, "e-open")
	require.NoError(t, err)
	assert.Empty(t, event.Participants)

	_, err = svc.Unregister(studentActor, "e-open")
	assert.ErrorIs(t, err, apperrors.ErrNotRegistered)
}

func TestEventService_Update_PreservesParticipants(t *testing.T) {
	svc, repo := newEventService(t)

	seeded := seedEvent(t, repo, models.Event{
		ID:                   "e-open",
		RegistrationRequired: true,
		Author:               models.AuthorRefFrom(facultyActor),
	})

	_, err := svc.Register(studentActor, seeded.ID)
	require.NoError(t, err)

	req := validEventRequest()
	req.Title = "Renamed robotics workshop"

	updated, err := svc.Update(facultyActor, seeded.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed robotics workshop", updated.Title)
	require.Len(t, updated.Participants, 1, "participants survive updates")
	assert.Equal(t, facultyActor.ID, updated.Author.ID)
}

func TestEventService_Delete_NotFoundAfterDelete(t *testing.T) {
	svc, repo := newEventService(t)
	seedEvent(t, repo, models.Event{ID: "e-1", Author: models.AuthorRefFrom(facultyActor)})

	require.NoError(t, svc.Delete(facultyActor, "e-1"))

	err := svc.Delete(facultyActor, "e-1")
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}
