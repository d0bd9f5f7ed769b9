package repositories

import (
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/jsonstore"
)

// NoticeRepository manages the notices collection.
type NoticeRepository struct {
	col *jsonstore.Collection[models.Notice]
}

// NewNoticeRepository creates a new NoticeRepository.
func NewNoticeRepository(dataDir string) *NoticeRepository {
	return &NoticeRepository{col: jsonstore.NewCollection[models.Notice](dataDir, "notices")}
}

// GetAll returns every notice in file order.
func (r *NoticeRepository) GetAll() []models.Notice {
	return r.col.LoadAll()
}

// GetByID returns the notice with the given id.
func (r *NoticeRepository) GetByID(id string) (*models.Notice, error) {
	for _, n := range r.col.LoadAll() {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, apperrors.ErrNoticeNotFound
}

// Insert appends a new notice.
func (r *NoticeRepository) Insert(notice models.Notice) error {
	return r.col.Update(func(notices []models.Notice) ([]models.Notice, error) {
		return append(notices, notice), nil
	})
}

// Mutate applies fn to the stored notice inside one read-modify-write cycle.
func (r *NoticeRepository) Mutate(id string, fn func(*models.Notice) error) (*models.Notice, error) {
	var updated models.Notice
	err := r.col.Update(func(notices []models.Notice) ([]models.Notice, error) {
		for i := range notices {
			if notices[i].ID == id {
				if err := fn(&notices[i]); err != nil {
					return nil, err
				}
				updated = notices[i]
				return notices, nil
			}
		}
		return nil, apperrors.ErrNoticeNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the notice with the given id.
func (r *NoticeRepository) Delete(id string) error {
	return r.col.Update(func(notices []models.Notice) ([]models.Notice, error) {
		for i := range notices {
			if notices[i].ID == id {
				return append(notices[:i], notices[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrNoticeNotFound
	})
}
