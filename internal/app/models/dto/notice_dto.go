package dto

import (
	"time"

	"github.com/arda/campusconnect/internal/app/models"
)

// CreateNoticeRequest carries a new notice.
type CreateNoticeRequest struct {
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Category       string     `json:"category"`
	TargetAudience string     `json:"targetAudience"`
	Department     string     `json:"department"`
	ExpiryDate     *time.Time `json:"expiryDate"`
}

// UpdateNoticeRequest carries notice changes; id, author and createdAt are
// never taken from the payload.
type UpdateNoticeRequest = CreateNoticeRequest

// NoticeFilter selects notices in List.
type NoticeFilter struct {
	Category   string `form:"category"`
	Department string `form:"department"`
	Search     string `form:"search"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=50"`
}

// NoticeData wraps a single notice record.
type NoticeData struct {
	Notice models.Notice `json:"notice"`
}

// NoticeListData is the payload for the notice list endpoint.
type NoticeListData struct {
	Notices    []models.Notice `json:"notices"`
	Pagination PaginationInfo  `json:"pagination"`
}
