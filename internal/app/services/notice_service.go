package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	appAuth "github.com/arda/campusconnect/internal/app/auth"
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/repositories"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/helpers"
	"github.com/arda/campusconnect/internal/pkg/logger"
)

// NoticeService defines the interface for notice operations
type NoticeService interface {
	List(actor *models.User, filter *dto.NoticeFilter) (*dto.NoticeListData, error)
	GetByID(actor *models.User, id string) (*models.Notice, error)
	Create(actor *models.User, req *dto.CreateNoticeRequest) (*models.Notice, error)
	Update(actor *models.User, id string, req *dto.UpdateNoticeRequest) (*models.Notice, error)
	Delete(actor *models.User, id string) error
}

type noticeServiceImpl struct {
	noticeRepo *repositories.NoticeRepository
	authzSvc   *appAuth.AuthorizationService
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeRepo *repositories.NoticeRepository, authzSvc *appAuth.AuthorizationService) NoticeService {
	return &noticeServiceImpl{
		noticeRepo: noticeRepo,
		authzSvc:   authzSvc,
	}
}

// List returns active, unexpired notices visible to the actor's role,
// newest first.
func (s *noticeServiceImpl) List(actor *models.User, filter *dto.NoticeFilter) (*dto.NoticeListData, error) {
	now := time.Now()
	all := s.noticeRepo.GetAll()

	notices := make([]models.Notice, 0, len(all))
	for _, n := range all {
		if !n.IsActive || n.IsExpired(now) {
			continue
		}
		if !n.VisibleTo(actor.Role) {
			continue
		}
		if filter.Category != "" && n.Category != models.NoticeCategory(filter.Category) {
			continue
		}
		// Department-scoped notices only match their own department,
		// but notices without one match any department filter.
		if filter.Department != "" && n.Department != "" && !strings.EqualFold(n.Department, filter.Department) {
			continue
		}
		if filter.Search != "" && !containsFold(n.Title, filter.Search) && !containsFold(n.Content, filter.Search) {
			continue
		}
		notices = append(notices, n)
	}

	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].CreatedAt.After(notices[j].CreatedAt)
	})

	total := len(notices)
	start, end := helpers.CalculateSliceIndices(filter.Page, filter.Limit, total)
	page := notices[start:end]

	return &dto.NoticeListData{
		Notices:    page,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.Limit),
	}, nil
}

// GetByID returns a single notice if the actor's role is in its audience.
func (s *noticeServiceImpl) GetByID(actor *models.User, id string) (*models.Notice, error) {
	notice, err := s.noticeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !notice.VisibleTo(actor.Role) {
		return nil, apperrors.NewForbiddenError("You don't have permission to view this notice")
	}
	return notice, nil
}

// Create validates and stores a new notice authored by the actor.
func (s *noticeServiceImpl) Create(actor *models.User, req *dto.CreateNoticeRequest) (*models.Notice, error) {
	validated, err := validateNoticeRequest(req)
	if err != nil {
		return nil, err
	}

	notice := models.Notice{
		ID:             uuid.New().String(),
		Title:          validated.Title,
		Content:        validated.Content,
		Category:       models.NoticeCategory(validated.Category),
		TargetAudience: models.TargetAudience(validated.TargetAudience),
		Department:     validated.Department,
		ExpiryDate:     validated.ExpiryDate,
		Author:         models.AuthorRefFrom(actor),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
		IsActive:       true,
	}

	if err := s.noticeRepo.Insert(notice); err != nil {
		return nil, err
	}

	logger.Info().Str("noticeID", notice.ID).Str("authorID", actor.ID).Msg("Notice created")
	return &notice, nil
}

// Update replaces the mutable fields of a notice. Only the author or an
// admin may update; author, createdAt and isActive are preserved.
func (s *noticeServiceImpl) Update(actor *models.User, id string, req *dto.UpdateNoticeRequest) (*models.Notice, error) {
	existing, err := s.noticeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.authzSvc.RequireOwnerOrAdmin(actor, existing.Author.ID, "You can only update your own notices"); err != nil {
		return nil, err
	}

	validated, err := validateNoticeRequest(req)
	if err != nil {
		return nil, err
	}

	return s.noticeRepo.Mutate(id, func(n *models.Notice) error {
		n.Title = validated.Title
		n.Content = validated.Content
		n.Category = models.NoticeCategory(validated.Category)
		n.TargetAudience = models.TargetAudience(validated.TargetAudience)
		n.Department = validated.Department
		n.ExpiryDate = validated.ExpiryDate
		n.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// Delete removes a notice. Only the author or an admin may delete.
func (s *noticeServiceImpl) Delete(actor *models.User, id string) error {
	existing, err := s.noticeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.authzSvc.RequireOwnerOrAdmin(actor, existing.Author.ID, "You can only delete your own notices"); err != nil {
		return err
	}
	if err := s.noticeRepo.Delete(id); err != nil {
		return err
	}
	logger.Info().Str("noticeID", id).Str("actorID", actor.ID).Msg("Notice deleted")
	return nil
}

func validateNoticeRequest(req *dto.CreateNoticeRequest) (*dto.CreateNoticeRequest, error) {
	ve := apperrors.NewValidationError()

	out := *req
	out.Title = checkLength(ve, "title", req.Title, 5, 200)
	out.Content = checkLength(ve, "content", req.Content, 10, 2000)
	checkOneOf(ve, "category", models.NoticeCategory(req.Category), models.NoticeCategories)
	checkOneOf(ve, "targetAudience", models.TargetAudience(req.TargetAudience), models.TargetAudiences)
	out.Department = checkOptionalLength(ve, "department", req.Department, 50)

	if ve.HasErrors() {
		return nil, ve
	}
	return &out, nil
}
