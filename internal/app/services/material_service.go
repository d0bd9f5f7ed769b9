package services

import (
	"mime/multipart"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	appAuth "github.com/arda/campusconnect/internal/app/auth"
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/repositories"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/filestorage"
	"github.com/arda/campusconnect/internal/pkg/helpers"
	"github.com/arda/campusconnect/internal/pkg/logger"
)

// MaterialService defines the interface for study material operations
type MaterialService interface {
	List(filter *dto.MaterialFilter) (*dto.MaterialListData, error)
	GetByID(id string) (*models.Material, error)
	Create(actor *models.User, req *dto.CreateMaterialRequest, file *multipart.FileHeader) (*models.Material, error)
	Update(actor *models.User, id string, req *dto.UpdateMaterialRequest) (*models.Material, error)
	Download(id string) (*models.Material, string, error)
	Delete(actor *models.User, id string) error
	Stats() (*dto.MaterialStats, error)
}

type materialServiceImpl struct {
	materialRepo       *repositories.MaterialRepository
	authzSvc           *appAuth.AuthorizationService
	storage            *filestorage.LocalStorage
	maxFileSize        int64
	materialExtensions []string
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materialRepo *repositories.MaterialRepository,
	authzSvc *appAuth.AuthorizationService,
	storage *filestorage.LocalStorage,
	maxFileSize int64,
	materialExtensions []string,
) MaterialService {
	return &materialServiceImpl{
		materialRepo:       materialRepo,
		authzSvc:           authzSvc,
		storage:            storage,
		maxFileSize:        maxFileSize,
		materialExtensions: materialExtensions,
	}
}

// List returns materials matching the filter, newest first.
func (s *materialServiceImpl) List(filter *dto.MaterialFilter) (*dto.MaterialListData, error) {
	all := s.materialRepo.GetAll()

	materials := make([]models.Material, 0, len(all))
	for _, m := range all {
		if filter.Subject != "" && !containsFold(m.Subject, filter.Subject) {
			continue
		}
		if filter.Semester != nil && m.Semester != *filter.Semester {
			continue
		}
		if filter.Department != "" && !containsFold(m.Department, filter.Department) {
			continue
		}
		if filter.MaterialType != "" && m.MaterialType != models.MaterialType(filter.MaterialType) {
			continue
		}
		if filter.Search != "" &&
			!containsFold(m.Title, filter.Search) &&
			!containsFold(m.Description, filter.Search) &&
			!containsFold(m.Subject, filter.Search) {
			continue
		}
		materials = append(materials, m)
	}

	sort.SliceStable(materials, func(i, j int) bool {
		return materials[i].CreatedAt.After(materials[j].CreatedAt)
	})

	total := len(materials)
	start, end := helpers.CalculateSliceIndices(filter.Page, filter.Limit, total)

	return &dto.MaterialListData{
		Materials:  materials[start:end],
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.Limit),
	}, nil
}

// GetByID returns a material without touching its download counter.
func (s *materialServiceImpl) GetByID(id string) (*models.Material, error) {
	return s.materialRepo.GetByID(id)
}

// Create validates the metadata and file, stores the file and the record.
func (s *materialServiceImpl) Create(actor *models.User, req *dto.CreateMaterialRequest, file *multipart.FileHeader) (*models.Material, error) {
	validated, err := s.validateMaterialRequest(req)
	if err != nil {
		return nil, err
	}

	if file == nil {
		return nil, apperrors.NewBadRequestError("A file is required to upload a material")
	}
	if !filestorage.AllowedExtension(file.Filename, s.materialExtensions) {
		return nil, apperrors.NewBadRequestError("File must be one of: " + strings.Join(s.materialExtensions, ", "))
	}
	if file.Size > s.maxFileSize {
		return nil, apperrors.NewBadRequestError("File exceeds the maximum allowed size")
	}

	stored, err := s.storage.SaveFile(file, "materials")
	if err != nil {
		return nil, err
	}

	material := models.Material{
		ID:           uuid.New().String(),
		Title:        validated.Title,
		Description:  validated.Description,
		Subject:      validated.Subject,
		Semester:     validated.Semester,
		Department:   validated.Department,
		MaterialType: models.MaterialType(validated.MaterialType),
		FileName:     stored.FileName,
		FilePath:     stored.FilePath,
		FileSize:     stored.FileSize,
		MimeType:     stored.MimeType,
		UploadedBy:   models.AuthorRefFrom(actor),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.materialRepo.Insert(material); err != nil {
		return nil, err
	}

	logger.Info().Str("materialID", material.ID).Str("uploaderID", actor.ID).Msg("Material uploaded")
	return &material, nil
}

// Update replaces the material metadata. Only the uploader or an admin may
// update; the stored file, counters, uploader snapshot and createdAt are
// preserved.
func (s *materialServiceImpl) Update(actor *models.User, id string, req *dto.UpdateMaterialRequest) (*models.Material, error) {
	existing, err := s.materialRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.authzSvc.RequireOwnerOrAdmin(actor, existing.UploadedBy.ID, "You can only update your own materials"); err != nil {
		return nil, err
	}

	validated, err := s.validateMaterialRequest(req)
	if err != nil {
		return nil, err
	}

	return s.materialRepo.Mutate(id, func(m *models.Material) error {
		m.Title = validated.Title
		m.Description = validated.Description
		m.Subject = validated.Subject
		m.Semester = validated.Semester
		m.Department = validated.Department
		m.MaterialType = models.MaterialType(validated.MaterialType)
		m.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// Download resolves the stored file and bumps the download counter.
// This is the only path that counts downloads.
func (s *materialServiceImpl) Download(id string) (*models.Material, string, error) {
	material, err := s.materialRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}

	absPath, err := s.storage.Resolve(material.FilePath)
	if err != nil {
		return nil, "", apperrors.ErrFileNotFound
	}

	now := time.Now().UTC()
	updated, err := s.materialRepo.Mutate(id, func(m *models.Material) error {
		m.DownloadCount++
		m.LastDownloaded = &now
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return updated, absPath, nil
}

// Delete removes the stored file and the record. Only the uploader or an
// admin may delete. A missing file is logged and tolerated; the record is
// removed regardless.
func (s *materialServiceImpl) Delete(actor *models.User, id string) error {
	existing, err := s.materialRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.authzSvc.RequireOwnerOrAdmin(actor, existing.UploadedBy.ID, "You can only delete your own materials"); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(existing.FilePath); err != nil {
		logger.Warn().Err(err).Str("materialID", id).Str("filePath", existing.FilePath).Msg("Failed to delete material file")
	}

	if err := s.materialRepo.Delete(id); err != nil {
		return err
	}
	logger.Info().Str("materialID", id).Str("actorID", actor.ID).Msg("Material deleted")
	return nil
}

// Stats aggregates counters over the whole collection and lists the five
// most recent uploads.
func (s *materialServiceImpl) Stats() (*dto.MaterialStats, error) {
	all := s.materialRepo.GetAll()

	stats := dto.MaterialStats{
		TotalMaterials: len(all),
		ByType:         map[string]int{},
		BySemester:     map[string]int{},
		ByDepartment:   map[string]int{},
		RecentUploads:  []dto.MaterialStatsSummary{},
	}

	for _, m := range all {
		stats.ByType[string(m.MaterialType)]++
		stats.BySemester[strconv.Itoa(m.Semester)]++
		stats.ByDepartment[m.Department]++
		stats.TotalDownloads += m.DownloadCount
	}

	sorted := make([]models.Material, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	for _, m := range sorted {
		stats.RecentUploads = append(stats.RecentUploads, dto.MaterialStatsSummary{
			ID:         m.ID,
			Title:      m.Title,
			Subject:    m.Subject,
			UploadedBy: m.UploadedBy.Name,
			CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		})
	}

	return &stats, nil
}

func (s *materialServiceImpl) validateMaterialRequest(req *dto.CreateMaterialRequest) (*dto.CreateMaterialRequest, error) {
	ve := apperrors.NewValidationError()

	out := *req
	out.Title = checkLength(ve, "title", req.Title, 3, 200)
	out.Description = checkOptionalLength(ve, "description", req.Description, 500)
	out.Subject = checkLength(ve, "subject", req.Subject, 2, 100)
	out.Department = checkLength(ve, "department", req.Department, 2, 50)
	checkOneOf(ve, "materialType", models.MaterialType(req.MaterialType), models.MaterialTypes)

	if req.Semester < models.MinSemester || req.Semester > models.MaxSemester {
		ve.Add("semester", "semester must be between 1 and 8")
	}

	if ve.HasErrors() {
		return nil, ve
	}
	return &out, nil
}
