package services

import (
	"mime/multipart"
	"sort"
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

// ResumeService defines the interface for resume operations
type ResumeService interface {
	List(actor *models.User, filter *dto.ResumeFilter) (*dto.ResumeListData, error)
	ListMine(actor *models.User) (*dto.MyResumesData, error)
	GetByID(actor *models.User, id string) (*models.Resume, error)
	Create(actor *models.User, req *dto.CreateResumeRequest, file *multipart.FileHeader) (*models.Resume, error)
	Update(actor *models.User, id string, req *dto.CreateResumeRequest) (*models.Resume, error)
	SetVisibility(actor *models.User, id string, isPublic bool) (*models.Resume, error)
	Download(actor *models.User, id string) (*models.Resume, string, error)
	Delete(actor *models.User, id string) error
}

type resumeServiceImpl struct {
	resumeRepo       *repositories.ResumeRepository
	authzSvc         *appAuth.AuthorizationService
	storage          *filestorage.LocalStorage
	maxFileSize      int64
	resumeExtensions []string
}

// NewResumeService creates a new ResumeService
func NewResumeService(
	resumeRepo *repositories.ResumeRepository,
	authzSvc *appAuth.AuthorizationService,
	storage *filestorage.LocalStorage,
	maxFileSize int64,
	resumeExtensions []string,
) ResumeService {
	return &resumeServiceImpl{
		resumeRepo:       resumeRepo,
		authzSvc:         authzSvc,
		storage:          storage,
		maxFileSize:      maxFileSize,
		resumeExtensions: resumeExtensions,
	}
}

// List returns resumes visible to the actor, newest first. The stored file
// path is stripped from entries the actor does not own unless the actor is
// an admin; it is only useful to callers allowed to download.
func (s *resumeServiceImpl) List(actor *models.User, filter *dto.ResumeFilter) (*dto.ResumeListData, error) {
	all := s.resumeRepo.GetAll()

	resumes := make([]models.Resume, 0, len(all))
	for _, r := range all {
		if !r.VisibleTo(actor) {
			continue
		}
		if filter.Category != "" && r.Category != models.ResumeCategory(filter.Category) {
			continue
		}
		if filter.Experience != "" && r.Experience != models.ExperienceLevel(filter.Experience) {
			continue
		}
		if filter.Skills != "" && !matchesAnySkill(r.Skills, filter.Skills) {
			continue
		}
		if filter.Search != "" &&
			!containsFold(r.Title, filter.Search) &&
			!containsFold(r.Description, filter.Search) &&
			!matchesAnySkill(r.Skills, filter.Search) {
			continue
		}
		if r.UploadedBy.ID != actor.ID && actor.Role != models.RoleAdmin {
			r.FilePath = ""
		}
		resumes = append(resumes, r)
	}

	sort.SliceStable(resumes, func(i, j int) bool {
		return resumes[i].CreatedAt.After(resumes[j].CreatedAt)
	})

	total := len(resumes)
	start, end := helpers.CalculateSliceIndices(filter.Page, filter.Limit, total)

	return &dto.ResumeListData{
		Resumes:    resumes[start:end],
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.Limit),
	}, nil
}

// ListMine returns every resume owned by the actor, newest first.
func (s *resumeServiceImpl) ListMine(actor *models.User) (*dto.MyResumesData, error) {
	all := s.resumeRepo.GetAll()

	mine := make([]models.Resume, 0)
	for _, r := range all {
		if r.UploadedBy.ID == actor.ID {
			mine = append(mine, r)
		}
	}

	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})

	return &dto.MyResumesData{Resumes: mine, Total: len(mine)}, nil
}

// GetByID returns a resume the actor may view and bumps its view counter.
func (s *resumeServiceImpl) GetByID(actor *models.User, id string) (*models.Resume, error) {
	resume, err := s.resumeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !resume.VisibleTo(actor) {
		return nil, apperrors.NewForbiddenError("You don't have permission to view this resume")
	}

	now := time.Now().UTC()
	updated, err := s.resumeRepo.Mutate(id, func(r *models.Resume) error {
		r.ViewCount++
		r.LastViewed = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.UploadedBy.ID != actor.ID && actor.Role != models.RoleAdmin {
		updated.FilePath = ""
	}
	return updated, nil
}

// Create validates the metadata and file, then stores both. Callers are
// gated to students at the route level.
func (s *resumeServiceImpl) Create(actor *models.User, req *dto.CreateResumeRequest, file *multipart.FileHeader) (*models.Resume, error) {
	validated, skills, err := s.validateResumeRequest(req)
	if err != nil {
		return nil, err
	}

	if file == nil {
		return nil, apperrors.NewBadRequestError("A file is required to upload a resume")
	}
	if !filestorage.AllowedExtension(file.Filename, s.resumeExtensions) {
		return nil, apperrors.NewBadRequestError("Resume must be one of: " + strings.Join(s.resumeExtensions, ", "))
	}
	if file.Size > s.maxFileSize {
		return nil, apperrors.NewBadRequestError("File exceeds the maximum allowed size")
	}

	stored, err := s.storage.SaveFile(file, "resumes")
	if err != nil {
		return nil, err
	}

	resume := models.Resume{
		ID:          uuid.New().String(),
		Title:       validated.Title,
		Description: validated.Description,
		Category:    models.ResumeCategory(validated.Category),
		Skills:      skills,
		Experience:  models.ExperienceLevel(validated.Experience),
		FileName:    stored.FileName,
		FilePath:    stored.FilePath,
		FileSize:    stored.FileSize,
		MimeType:    stored.MimeType,
		UploadedBy:  models.UploaderRefFrom(actor),
		IsPublic:    false,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.resumeRepo.Insert(resume); err != nil {
		return nil, err
	}

	logger.Info().Str("resumeID", resume.ID).Str("uploaderID", actor.ID).Msg("Resume uploaded")
	return &resume, nil
}

// Update replaces the metadata of a resume the actor owns. The stored file,
// visibility flag and counters are preserved.
func (s *resumeServiceImpl) Update(actor *models.User, id string, req *dto.CreateResumeRequest) (*models.Resume, error) {
	existing, err := s.resumeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.authzSvc.RequireOwner(actor, existing.UploadedBy.ID, "You can only update your own resumes"); err != nil {
		return nil, err
	}

	validated, skills, err := s.validateResumeRequest(req)
	if err != nil {
		return nil, err
	}

	return s.resumeRepo.Mutate(id, func(r *models.Resume) error {
		r.Title = validated.Title
		r.Description = validated.Description
		r.Category = models.ResumeCategory(validated.Category)
		r.Skills = skills
		r.Experience = models.ExperienceLevel(validated.Experience)
		r.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// SetVisibility toggles whether a resume the actor owns is public.
func (s *resumeServiceImpl) SetVisibility(actor *models.User, id string, isPublic bool) (*models.Resume, error) {
	existing, err := s.resumeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.authzSvc.RequireOwner(actor, existing.UploadedBy.ID, "You can only change visibility of your own resumes"); err != nil {
		return nil, err
	}

	return s.resumeRepo.Mutate(id, func(r *models.Resume) error {
		r.IsPublic = isPublic
		r.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// Download resolves the stored file for the owner, faculty or an admin,
// and bumps the download counter.
func (s *resumeServiceImpl) Download(actor *models.User, id string) (*models.Resume, string, error) {
	resume, err := s.resumeRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if !resume.DownloadableBy(actor) {
		return nil, "", apperrors.NewForbiddenError("You don't have permission to download this resume")
	}

	absPath, err := s.storage.Resolve(resume.FilePath)
	if err != nil {
		return nil, "", apperrors.ErrFileNotFound
	}

	now := time.Now().UTC()
	updated, err := s.resumeRepo.Mutate(id, func(r *models.Resume) error {
		r.DownloadCount++
		r.LastDownloaded = &now
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return updated, absPath, nil
}

// Delete removes the stored file and the record. Only the owner may delete.
// A missing file is logged and tolerated.
func (s *resumeServiceImpl) Delete(actor *models.User, id string) error {
	existing, err := s.resumeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.authzSvc.RequireOwner(actor, existing.UploadedBy.ID, "You can only delete your own resumes"); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(existing.FilePath); err != nil {
		logger.Warn().Err(err).Str("resumeID", id).Str("filePath", existing.FilePath).Msg("Failed to delete resume file")
	}

	if err := s.resumeRepo.Delete(id); err != nil {
		return err
	}
	logger.Info().Str("resumeID", id).Str("actorID", actor.ID).Msg("Resume deleted")
	return nil
}

func (s *resumeServiceImpl) validateResumeRequest(req *dto.CreateResumeRequest) (*dto.CreateResumeRequest, []string, error) {
	ve := apperrors.NewValidationError()

	out := *req
	out.Title = checkLength(ve, "title", req.Title, 3, 200)
	out.Description = checkOptionalLength(ve, "description", req.Description, 300)
	checkOneOf(ve, "category", models.ResumeCategory(req.Category), models.ResumeCategories)
	checkOneOf(ve, "experience", models.ExperienceLevel(req.Experience), models.ExperienceLevels)

	skills := splitSkills(req.Skills)
	if len(skills) > models.MaxResumeSkills {
		ve.Add("skills", "at most 20 skills are allowed")
	}
	for _, skill := range skills {
		if len(skill) > 50 {
			ve.Add("skills", "each skill must be at most 50 characters")
			break
		}
	}

	if ve.HasErrors() {
		return nil, nil, ve
	}
	return &out, skills, nil
}

// matchesAnySkill reports whether any comma-separated wanted term is a
// case-insensitive substring of one of the resume's skills.
func matchesAnySkill(skills []string, wanted string) bool {
	for _, w := range strings.Split(wanted, ",") {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		for _, s := range skills {
			if containsFold(s, w) {
				return true
			}
		}
	}
	return false
}
