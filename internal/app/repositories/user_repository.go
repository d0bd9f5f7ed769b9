package repositories

import (
	"strings"

	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/jsonstore"
)

// UserRepository manages the users collection.
type UserRepository struct {
	col *jsonstore.Collection[models.User]
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(dataDir string) *UserRepository {
	return &UserRepository{col: jsonstore.NewCollection[models.User](dataDir, "users")}
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	for _, u := range r.col.LoadAll() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// GetByEmail returns the user with the given email, compared
// case-insensitively.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.col.LoadAll() {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Insert appends a new user, rejecting duplicate emails.
func (r *UserRepository) Insert(user models.User) error {
	return r.col.Update(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if strings.EqualFold(u.Email, user.Email) {
				return nil, apperrors.ErrEmailAlreadyExists
			}
		}
		return append(users, user), nil
	})
}

// Mutate applies fn to the stored user inside one read-modify-write cycle
// and returns the updated record.
func (r *UserRepository) Mutate(id string, fn func(*models.User) error) (*models.User, error) {
	var updated models.User
	err := r.col.Update(func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == id {
				if err := fn(&users[i]); err != nil {
					return nil, err
				}
				updated = users[i]
				return users, nil
			}
		}
		return nil, apperrors.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
