package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/arda/campusconnect/internal/app/auth"
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/repositories"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/filestorage"
)

func newMaterialService(t *testing.T) (MaterialService, *repositories.MaterialRepository, *filestorage.LocalStorage) {
	t.Helper()
	repo := repositories.NewMaterialRepository(t.TempDir())
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewMaterialService(repo, appAuth.NewAuthorizationService(), storage, 10*1024*1024, []string{"pdf", "doc", "docx", "ppt", "pptx", "txt"})
	return svc, repo, storage
}

func seedMaterial(t *testing.T, repo *repositories.MaterialRepository, m models.Material) models.Material {
	t.Helper()
	if m.Title == "" {
		m.Title = "Seeded material"
	}
	if m.Subject == "" {
		m.Subject = "Data Structures"
	}
	if m.Semester == 0 {
		m.Semester = 3
	}
	if m.Department == "" {
		m.Department = "Computer Science"
	}
	if m.MaterialType == "" {
		m.MaterialType = models.MaterialTypeNotes
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, repo.Insert(m))
	return m
}

func TestMaterialService_List_Filters(t *testing.T) {
	svc, repo, _ := newMaterialService(t)

	seedMaterial(t, repo, models.Material{ID: "m-ds3", Subject: "Data Structures", Semester: 3})
	seedMaterial(t, repo, models.Material{ID: "m-ds5", Subject: "Data Structures", Semester: 5})
	seedMaterial(t, repo, models.Material{ID: "m-os5", Subject: "Operating Systems", Semester: 5})

	five := 5
	bySemester, err := svc.List(&dto.MaterialFilter{Semester: &five, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, bySemester.Materials, 2)

	bySubject, err := svc.List(&dto.MaterialFilter{Subject: "data struct", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, bySubject.Materials, 2, "subject matches by case-insensitive substring")

	both, err := svc.List(&dto.MaterialFilter{Subject: "data", Semester: &five, Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, both.Materials, 1)
	assert.Equal(t, "m-ds5", both.Materials[0].ID)
}

func TestMaterialService_GetByID_DoesNotCountDownload(t *testing.T) {
	svc, repo, _ := newMaterialService(t)
	seedMaterial(t, repo, models.Material{ID: "m-1"})

	material, err := svc.GetByID("m-1")
	require.NoError(t, err)
	assert.Equal(t, 0, material.DownloadCount)

	reloaded, err := svc.GetByID("m-1")
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.DownloadCount)
}

func TestMaterialService_Download_CountsOnce(t *testing.T) {
	svc, repo, storage := newMaterialService(t)

	dir := filepath.Join(storage.BasePath(), "materials")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.pdf"), []byte("pdf bytes"), 0o644))

	seedMaterial(t, repo, models.Material{
		ID:       "m-1",
		FileName: "notes.pdf",
		FilePath: "uploads/materials/notes.pdf",
		MimeType: "application/pdf",
	})

	material, absPath, err := svc.Download("m-1")
	require.NoError(t, err)
	assert.Equal(t, 1, material.DownloadCount)
	assert.NotNil(t, material.LastDownloaded)
	assert.FileExists(t, absPath)

	again, _, err := svc.Download("m-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.DownloadCount)
}

func TestMaterialService_Download_MissingFile(t *testing.T) {
	svc, repo, _ := newMaterialService(t)
	seedMaterial(t, repo, models.Material{ID: "m-1", FilePath: "uploads/materials/ghost.pdf"})

	_, _, err := svc.Download("m-1")
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}

func TestMaterialService_Delete_ToleratesMissingFile(t *testing.T) {
	svc, repo, _ := newMaterialService(t)
	seedMaterial(t, repo, models.Material{
		ID:         "m-1",
		FilePath:   "uploads/materials/ghost.pdf",
		UploadedBy: models.AuthorRefFrom(facultyActor),
	})

	require.NoError(t, svc.Delete(facultyActor, "m-1"))

	err := svc.Delete(facultyActor, "m-1")
	assert.ErrorIs(t, err, apperrors.ErrMaterialNotFound)
}

func TestMaterialService_Delete_OwnershipRules(t *testing.T) {
	svc, repo, _ := newMaterialService(t)
	seedMaterial(t, repo, models.Material{ID: "m-1", UploadedBy: models.AuthorRefFrom(facultyActor)})

	otherFaculty := &models.User{ID: "faculty-2", Role: models.RoleFaculty}
	err := svc.Delete(otherFaculty, "m-1")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	assert.NoError(t, svc.Delete(adminActor, "m-1"))
}

func TestMaterialService_Update_OwnershipAndPreservedFields(t *testing.T) {
	svc, repo, _ := newMaterialService(t)
	created := time.Now().UTC().Add(-24 * time.Hour)
	seedMaterial(t, repo, models.Material{
		ID:            "m-1",
		UploadedBy:    models.AuthorRefFrom(facultyActor),
		FileName:      "notes.pdf",
		FilePath:      "uploads/materials/notes.pdf",
		DownloadCount: 7,
		CreatedAt:     created,
	})

	req := dto.UpdateMaterialRequest{
		Title:        "Revised lecture notes",
		Subject:      "Operating Systems",
		Semester:     5,
		Department:   "Computer Science",
		MaterialType: string(models.MaterialTypeNotes),
	}

	otherFaculty := &models.User{ID: "faculty-2", Role: models.RoleFaculty}
	_, err := svc.Update(otherFaculty, "m-1", &req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(facultyActor, "m-1", &req)
	require.NoError(t, err)
	assert.Equal(t, "Revised lecture notes", updated.Title)
	assert.Equal(t, 5, updated.Semester)
	assert.Equal(t, "notes.pdf", updated.FileName, "stored file is untouched")
	assert.Equal(t, "uploads/materials/notes.pdf", updated.FilePath)
	assert.Equal(t, 7, updated.DownloadCount)
	assert.True(t, updated.CreatedAt.Equal(created))
	assert.True(t, updated.UpdatedAt.After(created))
}

func TestMaterialService_Stats(t *testing.T) {
	svc, repo, _ := newMaterialService(t)

	seedMaterial(t, repo, models.Material{ID: "m-1", MaterialType: models.MaterialTypeNotes, Semester: 3, DownloadCount: 2})
	seedMaterial(t, repo, models.Material{ID: "m-2", MaterialType: models.MaterialTypeNotes, Semester: 5, DownloadCount: 1})
	seedMaterial(t, repo, models.Material{ID: "m-3", MaterialType: models.MaterialTypeSyllabus, Semester: 3})

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalMaterials)
	assert.Equal(t, 2, stats.ByType["notes"])
	assert.Equal(t, 1, stats.ByType["syllabus"])
	assert.Equal(t, 2, stats.BySemester["3"])
	assert.Equal(t, 3, stats.TotalDownloads)
	assert.Len(t, stats.RecentUploads, 3)
}
