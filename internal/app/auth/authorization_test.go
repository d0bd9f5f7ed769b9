package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
)

func TestHasPermission_Hierarchy(t *testing.T) {
	svc := NewAuthorizationService()

	student := &models.User{Role: models.RoleStudent}
	faculty := &models.User{Role: models.RoleFaculty}
	admin := &models.User{Role: models.RoleAdmin}

	assert.True(t, svc.HasPermission(student, models.RoleStudent))
	assert.False(t, svc.HasPermission(student, models.RoleFaculty))
	assert.False(t, svc.HasPermission(student, models.RoleAdmin))

	assert.True(t, svc.HasPermission(faculty, models.RoleStudent))
	assert.True(t, svc.HasPermission(faculty, models.RoleFaculty))
	assert.False(t, svc.HasPermission(faculty, models.RoleAdmin))

	assert.True(t, svc.HasPermission(admin, models.RoleStudent))
	assert.True(t, svc.HasPermission(admin, models.RoleFaculty))
	assert.True(t, svc.HasPermission(admin, models.RoleAdmin))
}

func TestHasAnyRole_ExplicitList(t *testing.T) {
	svc := NewAuthorizationService()

	admin := &models.User{Role: models.RoleAdmin}
	student := &models.User{Role: models.RoleStudent}

	// Allow-lists are exact: admin is not implicitly a student
	assert.False(t, svc.HasAnyRole(admin, models.RoleStudent))
	assert.True(t, svc.HasAnyRole(student, models.RoleStudent))
	assert.True(t, svc.HasAnyRole(admin, models.RoleFaculty, models.RoleAdmin))
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	svc := NewAuthorizationService()

	owner := &models.User{ID: "u1", Role: models.RoleFaculty}
	stranger := &models.User{ID: "u2", Role: models.RoleFaculty}
	admin := &models.User{ID: "u3", Role: models.RoleAdmin}

	assert.NoError(t, svc.RequireOwnerOrAdmin(owner, "u1", "nope"))
	assert.NoError(t, svc.RequireOwnerOrAdmin(admin, "u1", "nope"))

	err := svc.RequireOwnerOrAdmin(stranger, "u1", "nope")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRequireOwner_ExcludesAdmin(t *testing.T) {
	svc := NewAuthorizationService()

	admin := &models.User{ID: "u3", Role: models.RoleAdmin}

	err := svc.RequireOwner(admin, "u1", "owner only")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
