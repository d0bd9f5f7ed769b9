package dto

import (
	"github.com/arda/campusconnect/internal/app/models"
)

// CreateMaterialRequest carries new material metadata; the file itself
// arrives as the multipart "file" part.
type CreateMaterialRequest struct {
	Title        string `form:"title" json:"title"`
	Description  string `form:"description" json:"description"`
	Subject      string `form:"subject" json:"subject"`
	Semester     int    `form:"semester" json:"semester"`
	Department   string `form:"department" json:"department"`
	MaterialType string `form:"materialType" json:"materialType"`
}

// UpdateMaterialRequest carries metadata changes; file-derived fields are
// preserved server-side.
type UpdateMaterialRequest = CreateMaterialRequest

// MaterialFilter selects materials in List.
type MaterialFilter struct {
	Subject      string `form:"subject"`
	Semester     *int   `form:"semester"`
	Department   string `form:"department"`
	MaterialType string `form:"materialType"`
	Search       string `form:"search"`
	Page         int    `form:"page,default=1"`
	Limit        int    `form:"limit,default=20"`
}

// MaterialData wraps a single material record.
type MaterialData struct {
	Material models.Material `json:"material"`
}

// MaterialListData is the payload for the material list endpoint.
type MaterialListData struct {
	Materials  []models.Material `json:"materials"`
	Pagination PaginationInfo    `json:"pagination"`
}

// MaterialStatsSummary is one row of the recent-uploads list.
type MaterialStatsSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	UploadedBy string `json:"uploadedBy"`
	CreatedAt  string `json:"createdAt"`
}

// MaterialStats is the faculty/admin statistics overview.
type MaterialStats struct {
	TotalMaterials int                    `json:"totalMaterials"`
	ByType         map[string]int         `json:"byType"`
	BySemester     map[string]int         `json:"bySemester"`
	ByDepartment   map[string]int         `json:"byDepartment"`
	TotalDownloads int                    `json:"totalDownloads"`
	RecentUploads  []MaterialStatsSummary `json:"recentUploads"`
}

// MaterialStatsData wraps the statistics payload.
type MaterialStatsData struct {
	Stats MaterialStats `json:"stats"`
}
