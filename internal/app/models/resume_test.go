package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeVisibleTo(t *testing.T) {
	owner := &User{ID: "owner", Role: RoleStudent}
	otherStudent := &User{ID: "other", Role: RoleStudent}
	faculty := &User{ID: "fac", Role: RoleFaculty}
	admin := &User{ID: "adm", Role: RoleAdmin}

	private := &Resume{UploadedBy: UploaderRef{ID: "owner"}, IsPublic: false}
	public := &Resume{UploadedBy: UploaderRef{ID: "owner"}, IsPublic: true}

	assert.True(t, private.VisibleTo(owner))
	assert.False(t, private.VisibleTo(otherStudent))
	assert.True(t, private.VisibleTo(faculty))
	assert.True(t, private.VisibleTo(admin))

	assert.True(t, public.VisibleTo(otherStudent))
}

func TestResumeDownloadableBy(t *testing.T) {
	owner := &User{ID: "owner", Role: RoleStudent}
	otherStudent := &User{ID: "other", Role: RoleStudent}
	faculty := &User{ID: "fac", Role: RoleFaculty}
	admin := &User{ID: "adm", Role: RoleAdmin}

	// Public visibility does not grant download to other students
	public := &Resume{UploadedBy: UploaderRef{ID: "owner"}, IsPublic: true}

	assert.True(t, public.DownloadableBy(owner))
	assert.False(t, public.DownloadableBy(otherStudent))
	assert.True(t, public.DownloadableBy(faculty))
	assert.True(t, public.DownloadableBy(admin))
}
