package models

import (
	"time"
)

// MaterialType classifies a study material.
type MaterialType string

const (
	MaterialTypeNotes          MaterialType = "notes"
	MaterialTypeAssignment     MaterialType = "assignment"
	MaterialTypeSyllabus       MaterialType = "syllabus"
	MaterialTypePreviousPapers MaterialType = "previous-papers"
	MaterialTypeReference      MaterialType = "reference"
)

// MaterialTypes lists the accepted material type values.
var MaterialTypes = []MaterialType{
	MaterialTypeNotes,
	MaterialTypeAssignment,
	MaterialTypeSyllabus,
	MaterialTypePreviousPapers,
	MaterialTypeReference,
}

// Semester bounds for materials and student profiles.
const (
	MinSemester = 1
	MaxSemester = 8
)

// Material is a study document uploaded by faculty or admins.
type Material struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Subject        string       `json:"subject"`
	Semester       int          `json:"semester"`
	Department     string       `json:"department"`
	MaterialType   MaterialType `json:"materialType"`
	FileName       string       `json:"fileName"`
	FilePath       string       `json:"filePath"`
	FileSize       int64        `json:"fileSize"`
	MimeType       string       `json:"mimeType"`
	UploadedBy     AuthorRef    `json:"uploadedBy"`
	DownloadCount  int          `json:"downloadCount"`
	LastDownloaded *time.Time   `json:"lastDownloaded,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
