package dto

import (
	"github.com/arda/campusconnect/internal/app/models"
)

// CreateResumeRequest carries new resume metadata; the document arrives as
// the multipart "file" part. Skills may be a comma-separated string.
type CreateResumeRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Category    string `form:"category" json:"category"`
	Skills      string `form:"skills" json:"skills"`
	Experience  string `form:"experience" json:"experience"`
}

// UpdateResumeRequest carries metadata changes; file-derived fields and
// counters are preserved server-side.
type UpdateResumeRequest = CreateResumeRequest

// ResumeFilter selects resumes in List.
type ResumeFilter struct {
	Category   string `form:"category"`
	Experience string `form:"experience"`
	Skills     string `form:"skills"` // Comma-separated, matched case-insensitively
	Search     string `form:"search"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
}

// VisibilityRequest toggles a resume between public and private.
type VisibilityRequest struct {
	IsPublic *bool `json:"isPublic" binding:"required"`
}

// ResumeData wraps a single resume record.
type ResumeData struct {
	Resume models.Resume `json:"resume"`
}

// ResumeListData is the payload for the resume list endpoint.
type ResumeListData struct {
	Resumes    []models.Resume `json:"resumes"`
	Pagination PaginationInfo  `json:"pagination"`
}

// MyResumesData is the payload for the owner's resume list.
type MyResumesData struct {
	Resumes []models.Resume `json:"resumes"`
	Total   int             `json:"total"`
}
