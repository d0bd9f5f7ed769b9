package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/arda/campusconnect/internal/app/auth"
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/repositories"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
)

var (
	studentActor = &models.User{ID: "student-1", Name: "Stu Dent", Role: models.RoleStudent}
	facultyActor = &models.User{ID: "faculty-1", Name: "Fa Culty", Role: models.RoleFaculty}
	adminActor   = &models.User{ID: "admin-1", Name: "Ad Min", Role: models.RoleAdmin}
)

func newNoticeService(t *testing.T) (NoticeService, *repositories.NoticeRepository) {
	t.Helper()
	repo := repositories.NewNoticeRepository(t.TempDir())
	return NewNoticeService(repo, appAuth.NewAuthorizationService()), repo
}

func seedNotice(t *testing.T, repo *repositories.NoticeRepository, n models.Notice) models.Notice {
	t.Helper()
	if n.Title == "" {
		n.Title = "Seeded notice title"
	}
	if n.Content == "" {
		n.Content = "Seeded notice content body"
	}
	if n.Category == "" {
		n.Category = models.NoticeCategoryGeneral
	}
	if n.TargetAudience == "" {
		n.TargetAudience = models.AudienceAll
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	n.IsActive = true
	require.NoError(t, repo.Insert(n))
	return n
}

func validNoticeRequest() *dto.CreateNoticeRequest {
	return &dto.CreateNoticeRequest{
		Title:          "Midterm schedule released",
		Content:        "The midterm examination schedule is now available.",
		Category:       "academic",
		TargetAudience: "students",
	}
}

func TestNoticeService_List_AudienceFiltering(t *testing.T) {
	svc, repo := newNoticeService(t)

	seedNotice(t, repo, models.Notice{ID: "n-all", TargetAudience: models.AudienceAll})
	seedNotice(t, repo, models.Notice{ID: "n-students", TargetAudience: models.AudienceStudents})
	seedNotice(t, repo, models.Notice{ID: "n-faculty", TargetAudience: models.AudienceFaculty})

	ids := func(actor *models.User) map[string]bool {
		data, err := svc.List(actor, &dto.NoticeFilter{Page: 1, Limit: 50})
		require.NoError(t, err)
		out := map[string]bool{}
		for _, n := range data.Notices {
			out[n.ID] = true
		}
		return out
	}

	student := ids(studentActor)
	assert.True(t, student["n-all"] && student["n-students"])
	assert.False(t, student["n-faculty"])

	faculty := ids(facultyActor)
	assert.True(t, faculty["n-all"] && faculty["n-faculty"])
	assert.False(t, faculty["n-students"])

	admin := ids(adminActor)
	assert.Len(t, admin, 3, "admins see every audience")
}

func TestNoticeService_List_SkipsExpired(t *testing.T) {
	svc, repo := newNoticeService(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	seedNotice(t, repo, models.Notice{ID: "n-expired", ExpiryDate: &past})
	seedNotice(t, repo, models.Notice{ID: "n-live", ExpiryDate: &future})

	data, err := svc.List(adminActor, &dto.NoticeFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	require.Len(t, data.Notices, 1)
	assert.Equal(t, "n-live", data.Notices[0].ID)
}

func TestNoticeService_List_NewestFirstAndPaginated(t *testing.T) {
	svc, repo := newNoticeService(t)

	base := time.Now().UTC()
	for i := 0; i < 25; i++ {
		seedNotice(t, repo, models.Notice{
			ID:        fmt.Sprintf("n-%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	page3, err := svc.List(adminActor, &dto.NoticeFilter{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page3.Notices, 5)
	assert.Equal(t, 25, page3.Pagination.Total)
	assert.Equal(t, 3, page3.Pagination.Pages)

	page4, err := svc.List(adminActor, &dto.NoticeFilter{Page: 4, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page4.Notices)
	assert.Equal(t, 25, page4.Pagination.Total)

	page1, err := svc.List(adminActor, &dto.NoticeFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "n-24", page1.Notices[0].ID, "newest first")
}

func TestNoticeService_GetByID_AudienceForbidden(t *testing.T) {
	svc, repo := newNoticeService(t)
	seedNotice(t, repo, models.Notice{ID: "n-faculty", TargetAudience: models.AudienceFaculty})

	_, err := svc.GetByID(studentActor, "n-faculty")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	notice, err := svc.GetByID(adminActor, "n-faculty")
	require.NoError(t, err)
	assert.Equal(t, "n-faculty", notice.ID)
}

func TestNoticeService_Create(t *testing.T) {
	svc, _ := newNoticeService(t)

	notice, err := svc.Create(facultyActor, validNoticeRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, notice.ID)
	assert.Equal(t, facultyActor.ID, notice.Author.ID)
	assert.Equal(t, models.RoleFaculty, notice.Author.Role)
	assert.True(t, notice.IsActive)
}

func TestNoticeService_Create_Validation(t *testing.T) {
	svc, _ := newNoticeService(t)

	req := validNoticeRequest()
	req.Title = "abc"
	req.Category = "bogus"

	_, err := svc.Create(facultyActor, req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNoticeService_Update_OwnershipRules(t *testing.T) {
	svc, _ := newNoticeService(t)

	notice, err := svc.Create(facultyActor, validNoticeRequest())
	require.NoError(t, err)

	req := validNoticeRequest()
	req.Title = "Midterm schedule updated"

	otherFaculty := &models.User{ID: "faculty-2", Role: models.RoleFaculty}
	_, err = svc.Update(otherFaculty, notice.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(adminActor, notice.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Midterm schedule updated", updated.Title)
	assert.Equal(t, facultyActor.ID, updated.Author.ID, "author snapshot is immutable")
}

func TestNoticeService_Delete_Idempotence(t *testing.T) {
	svc, _ := newNoticeService(t)

	notice, err := svc.Create(facultyActor, validNoticeRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(facultyActor, notice.ID))

	err = svc.Delete(facultyActor, notice.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoticeNotFound)
}
