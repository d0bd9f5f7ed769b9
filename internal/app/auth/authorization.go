// Package auth holds the authorization policy: the three-role hierarchy and
// the ownership rule shared by every resource service. Read-visibility rules
// live on the models themselves and are evaluated at query time.
package auth

import (
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
)

// AuthorizationService answers role and ownership questions.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService.
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// HasPermission reports whether the user's role is at least the required
// one under the strict order student < faculty < admin.
func (s *AuthorizationService) HasPermission(user *models.User, required models.Role) bool {
	return user.Role.Level() >= required.Level()
}

// HasAnyRole reports whether the user's role is in the allow-list.
// Endpoint gates use explicit lists rather than the hierarchy: resume
// upload, for example, is student-only and must exclude admins.
func (s *AuthorizationService) HasAnyRole(user *models.User, roles ...models.Role) bool {
	for _, r := range roles {
		if user.Role == r {
			return true
		}
	}
	return false
}

// IsOwnerOrAdmin reports whether the user created the resource (by snapshot
// id) or is an admin.
func (s *AuthorizationService) IsOwnerOrAdmin(user *models.User, ownerID string) bool {
	return user.ID == ownerID || user.Role == models.RoleAdmin
}

// IsOwner reports strict ownership; resumes use this for mutation, where
// even admins are excluded.
func (s *AuthorizationService) IsOwner(user *models.User, ownerID string) bool {
	return user.ID == ownerID
}

// RequireOwnerOrAdmin returns a forbidden error unless the user owns the
// resource or is an admin.
func (s *AuthorizationService) RequireOwnerOrAdmin(user *models.User, ownerID, message string) error {
	if !s.IsOwnerOrAdmin(user, ownerID) {
		return apperrors.NewForbiddenError(message)
	}
	return nil
}

// RequireOwner returns a forbidden error unless the user owns the resource.
func (s *AuthorizationService) RequireOwner(user *models.User, ownerID, message string) error {
	if !s.IsOwner(user, ownerID) {
		return apperrors.NewForbiddenError(message)
	}
	return nil
}
