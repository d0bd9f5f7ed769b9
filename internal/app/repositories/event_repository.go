package repositories

import (
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/jsonstore"
)

// EventRepository manages the events collection.
type EventRepository struct {
	col *jsonstore.Collection[models.Event]
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(dataDir string) *EventRepository {
	return &EventRepository{col: jsonstore.NewCollection[models.Event](dataDir, "events")}
}

// GetAll returns every event in file order.
func (r *EventRepository) GetAll() []models.Event {
	return r.col.LoadAll()
}

// GetByID returns the event with the given id.
func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	for _, e := range r.col.LoadAll() {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

// Insert appends a new event.
func (r *EventRepository) Insert(event models.Event) error {
	return r.col.Update(func(events []models.Event) ([]models.Event, error) {
		return append(events, event), nil
	})
}

// Mutate applies fn to the stored event inside one read-modify-write cycle.
// Registration goes through here so the seat-capacity check and the
// participant append happen under the collection lock.
func (r *EventRepository) Mutate(id string, fn func(*models.Event) error) (*models.Event, error) {
	var updated models.Event
	err := r.col.Update(func(events []models.Event) ([]models.Event, error) {
		for i := range events {
			if events[i].ID == id {
				if err := fn(&events[i]); err != nil {
					return nil, err
				}
				updated = events[i]
				return events, nil
			}
		}
		return nil, apperrors.ErrEventNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the event with the given id.
func (r *EventRepository) Delete(id string) error {
	return r.col.Update(func(events []models.Event) ([]models.Event, error) {
		for i := range events {
			if events[i].ID == id {
				return append(events[:i], events[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrEventNotFound
	})
}
