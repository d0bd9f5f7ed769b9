package models

import (
	"time"
)

// ResumeCategory classifies what a resume is aimed at.
type ResumeCategory string

const (
	ResumeCategoryInternship ResumeCategory = "internship"
	ResumeCategoryPlacement  ResumeCategory = "placement"
	ResumeCategoryFreelance  ResumeCategory = "freelance"
	ResumeCategoryProject    ResumeCategory = "project"
)

// ResumeCategories lists the accepted category values.
var ResumeCategories = []ResumeCategory{
	ResumeCategoryInternship,
	ResumeCategoryPlacement,
	ResumeCategoryFreelance,
	ResumeCategoryProject,
}

// ExperienceLevel is the coarse experience band on a resume.
type ExperienceLevel string

const (
	ExperienceFresher  ExperienceLevel = "fresher"
	ExperienceUnderOne ExperienceLevel = "0-1"
	ExperienceOneTwo   ExperienceLevel = "1-2"
	ExperienceTwoFive  ExperienceLevel = "2-5"
	ExperienceFivePlus ExperienceLevel = "5+"
)

// ExperienceLevels lists the accepted experience values.
var ExperienceLevels = []ExperienceLevel{
	ExperienceFresher,
	ExperienceUnderOne,
	ExperienceOneTwo,
	ExperienceTwoFive,
	ExperienceFivePlus,
}

// MaxResumeSkills caps the skills list on a resume.
const MaxResumeSkills = 20

// Resume is a student-owned CV document. Private by default; only the owner
// may change it, and only owner/faculty/admin may download the file.
type Resume struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Category       ResumeCategory  `json:"category"`
	Skills         []string        `json:"skills"` // Order-preserving, at most MaxResumeSkills
	Experience     ExperienceLevel `json:"experience"`
	FileName       string          `json:"fileName"`
	FilePath       string          `json:"filePath,omitempty"`
	FileSize       int64           `json:"fileSize"`
	MimeType       string          `json:"mimeType"`
	UploadedBy     UploaderRef     `json:"uploadedBy"`
	IsPublic       bool            `json:"isPublic"`
	ViewCount      int             `json:"viewCount"`
	DownloadCount  int             `json:"downloadCount"`
	LastViewed     *time.Time      `json:"lastViewed,omitempty"`
	LastDownloaded *time.Time      `json:"lastDownloaded,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// VisibleTo reports whether a user may see the resume's metadata.
// Faculty and admins see every resume; students see their own plus public ones.
func (r *Resume) VisibleTo(u *User) bool {
	if u.Role == RoleAdmin || u.Role == RoleFaculty {
		return true
	}
	return r.UploadedBy.ID == u.ID || r.IsPublic
}

// DownloadableBy reports whether a user may fetch the resume file.
// Stricter than VisibleTo: public visibility alone is not enough.
func (r *Resume) DownloadableBy(u *User) bool {
	return r.UploadedBy.ID == u.ID || u.Role == RoleAdmin || u.Role == RoleFaculty
}
