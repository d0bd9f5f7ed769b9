package services

import (
	"mime/multipart"
	"sort"
	"time"

	"github.com/google/uuid"

	appAuth "github.com/arda/campusconnect/internal/app/auth"
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/repositories"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/filestorage"
	"github.com/arda/campusconnect/internal/pkg/helpers"
	"github.com/arda/campusconnect/internal/pkg/logger"
)

// EventService defines the interface for event operations
type EventService interface {
	List(filter *dto.EventFilter) (*dto.EventListData, error)
	GetByID(id string) (*dto.EventResponse, error)
	Create(actor *models.User, req *dto.CreateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error)
	Update(actor *models.User, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(actor *models.User, id string) error
	Register(actor *models.User, id string) (*dto.EventResponse, error)
	Unregister(actor *models.User, id string) (*dto.EventResponse, error)
}

type eventServiceImpl struct {
	eventRepo       *repositories.EventRepository
	authzSvc        *appAuth.AuthorizationService
	storage         *filestorage.LocalStorage
	maxFileSize     int64
	imageExtensions []string
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo *repositories.EventRepository,
	authzSvc *appAuth.AuthorizationService,
	storage *filestorage.LocalStorage,
	maxFileSize int64,
	imageExtensions []string,
) EventService {
	return &eventServiceImpl{
		eventRepo:       eventRepo,
		authzSvc:        authzSvc,
		storage:         storage,
		maxFileSize:     maxFileSize,
		imageExtensions: imageExtensions,
	}
}

// List returns events matching the filter, soonest first, each enriched
// with timing fields computed at read time.
func (s *eventServiceImpl) List(filter *dto.EventFilter) (*dto.EventListData, error) {
	now := time.Now()
	all := s.eventRepo.GetAll()

	events := make([]models.Event, 0, len(all))
	for _, e := range all {
		if filter.Category != "" && e.Category != models.EventCategory(filter.Category) {
			continue
		}
		if filter.Upcoming && !e.StartsAt().After(now) {
			continue
		}
		if filter.Search != "" &&
			!containsFold(e.Title, filter.Search) &&
			!containsFold(e.Description, filter.Search) &&
			!containsFold(e.Venue, filter.Search) {
			continue
		}
		events = append(events, e)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartsAt().Before(events[j].StartsAt())
	})

	total := len(events)
	start, end := helpers.CalculateSliceIndices(filter.Page, filter.Limit, total)
	page := events[start:end]

	responses := make([]dto.EventResponse, 0, len(page))
	for i := range page {
		responses = append(responses, enrichEvent(&page[i], now))
	}

	return &dto.EventListData{
		Events:     responses,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.Limit),
	}, nil
}

// GetByID returns a single event with timing fields.
func (s *eventServiceImpl) GetByID(id string) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := enrichEvent(event, time.Now())
	return &resp, nil
}

// Create validates and stores a new event, saving the optional banner image.
func (s *eventServiceImpl) Create(actor *models.User, req *dto.CreateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error) {
	validated, err := s.validateEventRequest(req)
	if err != nil {
		return nil, err
	}

	var imagePath string
	if image != nil {
		if !filestorage.AllowedExtension(image.Filename, s.imageExtensions) {
			return nil, apperrors.NewBadRequestError("Image must be a jpg, jpeg or png file")
		}
		if image.Size > s.maxFileSize {
			return nil, apperrors.NewBadRequestError("Image exceeds the maximum allowed size")
		}
		stored, err := s.storage.SaveFile(image, "events")
		if err != nil {
			return nil, err
		}
		imagePath = stored.FilePath
	}

	event := models.Event{
		ID:                   uuid.New().String(),
		Title:                validated.Title,
		Description:          validated.Description,
		Date:                 validated.Date,
		Time:                 validated.Time,
		Venue:                validated.Venue,
		Category:             models.EventCategory(validated.Category),
		Organizer:            validated.Organizer,
		MaxParticipants:      validated.MaxParticipants,
		RegistrationRequired: validated.RegistrationRequired,
		Image:                imagePath,
		Author:               models.AuthorRefFrom(actor),
		Participants:         []models.Participant{},
		CreatedAt:            time.Now().UTC(),
		UpdatedAt:            time.Now().UTC(),
	}

	if err := s.eventRepo.Insert(event); err != nil {
		return nil, err
	}

	logger.Info().Str("eventID", event.ID).Str("authorID", actor.ID).Msg("Event created")
	resp := enrichEvent(&event, time.Now())
	return &resp, nil
}

// Update replaces the mutable fields of an event. Participants, image,
// author and createdAt are preserved. Only the author or an admin may update.
func (s *eventServiceImpl) Update(actor *models.User, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	existing, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.authzSvc.RequireOwnerOrAdmin(actor, existing.Author.ID, "You can only update your own events"); err != nil {
		return nil, err
	}

	validated, err := s.validateEventRequest(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.eventRepo.Mutate(id, func(e *models.Event) error {
		e.Title = validated.Title
		e.Description = validated.Description
		e.Date = validated.Date
		e.Time = validated.Time
		e.Venue = validated.Venue
		e.Category = models.EventCategory(validated.Category)
		e.Organizer = validated.Organizer
		e.MaxParticipants = validated.MaxParticipants
		e.RegistrationRequired = validated.RegistrationRequired
		e.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := enrichEvent(updated, time.Now())
	return &resp, nil
}

// Delete removes an event record. Only the author or an admin may delete.
// The banner image is left on disk; stale banners are cheap and the record
// is gone either way.
func (s *eventServiceImpl) Delete(actor *models.User, id string) error {
	existing, err := s.eventRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.authzSvc.RequireOwnerOrAdmin(actor, existing.Author.ID, "You can only delete your own events"); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(id); err != nil {
		return err
	}
	logger.Info().Str("eventID", id).Str("actorID", actor.ID).Msg("Event deleted")
	return nil
}

// Register adds the actor to the participant list. The whole check-then-append
// sequence runs inside the collection lock so concurrent registrations cannot
// oversubscribe a capped event.
func (s *eventServiceImpl) Register(actor *models.User, id string) (*dto.EventResponse, error) {
	now := time.Now()
	updated, err := s.eventRepo.Mutate(id, func(e *models.Event) error {
		if !e.RegistrationRequired {
			return apperrors.ErrRegistrationNotNeeded
		}
		if !e.StartsAt().After(now) {
			return apperrors.ErrEventAlreadyStarted
		}
		if e.HasParticipant(actor.ID) {
			return apperrors.ErrAlreadyRegistered
		}
		if e.IsFull() {
			return apperrors.ErrEventFull
		}
		e.Participants = append(e.Participants, models.Participant{
			UserID:       actor.ID,
			Name:         actor.Name,
			Email:        actor.Email,
			RegisteredAt: now.UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("eventID", id).Str("userID", actor.ID).Msg("Event registration")
	resp := enrichEvent(updated, now)
	return &resp, nil
}

// Unregister removes the actor from the participant list.
func (s *eventServiceImpl) Unregister(actor *models.User, id string) (*dto.EventResponse, error) {
	updated, err := s.eventRepo.Mutate(id, func(e *models.Event) error {
		for i, p := range e.Participants {
			if p.UserID == actor.ID {
				e.Participants = append(e.Participants[:i], e.Participants[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotRegistered
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("eventID", id).Str("userID", actor.ID).Msg("Event registration cancelled")
	resp := enrichEvent(updated, time.Now())
	return &resp, nil
}

func (s *eventServiceImpl) validateEventRequest(req *dto.CreateEventRequest) (*dto.CreateEventRequest, error) {
	ve := apperrors.NewValidationError()

	out := *req
	out.Title = checkLength(ve, "title", req.Title, 5, 200)
	out.Description = checkLength(ve, "description", req.Description, 10, 1000)
	out.Venue = checkLength(ve, "venue", req.Venue, 3, 100)
	out.Organizer = checkLength(ve, "organizer", req.Organizer, 2, 100)
	checkOneOf(ve, "category", models.EventCategory(req.Category), models.EventCategories)

	if !helpers.ValidEventDate(req.Date) {
		ve.Add("date", "date must be in YYYY-MM-DD format")
	}
	if !helpers.ValidEventTime(req.Time) {
		ve.Add("time", "time must be in HH:MM format")
	}
	if req.MaxParticipants != nil && *req.MaxParticipants < 1 {
		ve.Add("maxParticipants", "maxParticipants must be at least 1")
	}

	if ve.HasErrors() {
		return nil, ve
	}
	return &out, nil
}

func enrichEvent(event *models.Event, now time.Time) dto.EventResponse {
	timing := helpers.ComputeEventTiming(event, now)
	return dto.EventResponse{
		Event:         *event,
		TimeRemaining: timing.TimeRemaining,
		IsUpcoming:    timing.IsUpcoming,
		IsPast:        timing.IsPast,
	}
}
