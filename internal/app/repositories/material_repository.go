package repositories

import (
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/jsonstore"
)

// MaterialRepository manages the materials collection.
type MaterialRepository struct {
	col *jsonstore.Collection[models.Material]
}

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(dataDir string) *MaterialRepository {
	return &MaterialRepository{col: jsonstore.NewCollection[models.Material](dataDir, "materials")}
}

// GetAll returns every material in file order.
func (r *MaterialRepository) GetAll() []models.Material {
	return r.col.LoadAll()
}

// GetByID returns the material with the given id.
func (r *MaterialRepository) GetByID(id string) (*models.Material, error) {
	for _, m := range r.col.LoadAll() {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, apperrors.ErrMaterialNotFound
}

// Insert appends a new material.
func (r *MaterialRepository) Insert(material models.Material) error {
	return r.col.Update(func(materials []models.Material) ([]models.Material, error) {
		return append(materials, material), nil
	})
}

// Mutate applies fn to the stored material inside one read-modify-write cycle.
func (r *MaterialRepository) Mutate(id string, fn func(*models.Material) error) (*models.Material, error) {
	var updated models.Material
	err := r.col.Update(func(materials []models.Material) ([]models.Material, error) {
		for i := range materials {
			if materials[i].ID == id {
				if err := fn(&materials[i]); err != nil {
					return nil, err
				}
				updated = materials[i]
				return materials, nil
			}
		}
		return nil, apperrors.ErrMaterialNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the material with the given id.
func (r *MaterialRepository) Delete(id string) error {
	return r.col.Update(func(materials []models.Material) ([]models.Material, error) {
		for i := range materials {
			if materials[i].ID == id {
				return append(materials[:i], materials[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrMaterialNotFound
	})
}
