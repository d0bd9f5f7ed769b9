package repositories

import (
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/jsonstore"
)

// ResumeRepository manages the resumes collection.
type ResumeRepository struct {
	col *jsonstore.Collection[models.Resume]
}

// NewResumeRepository creates a new ResumeRepository.
func NewResumeRepository(dataDir string) *ResumeRepository {
	return &ResumeRepository{col: jsonstore.NewCollection[models.Resume](dataDir, "resumes")}
}

// GetAll returns every resume in file order.
func (r *ResumeRepository) GetAll() []models.Resume {
	return r.col.LoadAll()
}

// GetByID returns the resume with the given id.
func (r *ResumeRepository) GetByID(id string) (*models.Resume, error) {
	for _, res := range r.col.LoadAll() {
		if res.ID == id {
			return &res, nil
		}
	}
	return nil, apperrors.ErrResumeNotFound
}

// Insert appends a new resume.
func (r *ResumeRepository) Insert(resume models.Resume) error {
	return r.col.Update(func(resumes []models.Resume) ([]models.Resume, error) {
		return append(resumes, resume), nil
	})
}

// Mutate applies fn to the stored resume inside one read-modify-write cycle.
func (r *ResumeRepository) Mutate(id string, fn func(*models.Resume) error) (*models.Resume, error) {
	var updated models.Resume
	err := r.col.Update(func(resumes []models.Resume) ([]models.Resume, error) {
		for i := range resumes {
			if resumes[i].ID == id {
				if err := fn(&resumes[i]); err != nil {
					return nil, err
				}
				updated = resumes[i]
				return resumes, nil
			}
		}
		return nil, apperrors.ErrResumeNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the resume with the given id.
func (r *ResumeRepository) Delete(id string) error {
	return r.col.Update(func(resumes []models.Resume) ([]models.Resume, error) {
		for i := range resumes {
			if resumes[i].ID == id {
				return append(resumes[:i], resumes[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrResumeNotFound
	})
}
