package models

import (
	"time"
)

// NoticeCategory classifies a notice.
type NoticeCategory string

const (
	NoticeCategoryAcademic NoticeCategory = "academic"
	NoticeCategoryEvent    NoticeCategory = "event"
	NoticeCategoryGeneral  NoticeCategory = "general"
	NoticeCategoryUrgent   NoticeCategory = "urgent"
)

// NoticeCategories lists the accepted category values.
var NoticeCategories = []NoticeCategory{
	NoticeCategoryAcademic,
	NoticeCategoryEvent,
	NoticeCategoryGeneral,
	NoticeCategoryUrgent,
}

// TargetAudience restricts who may read a notice.
type TargetAudience string

const (
	AudienceAll      TargetAudience = "all"
	AudienceStudents TargetAudience = "students"
	AudienceFaculty  TargetAudience = "faculty"
)

// TargetAudiences lists the accepted audience values.
var TargetAudiences = []TargetAudience{AudienceAll, AudienceStudents, AudienceFaculty}

// Notice is a public announcement posted by faculty or admins.
type Notice struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Category       NoticeCategory `json:"category"`
	TargetAudience TargetAudience `json:"targetAudience"`
	Department     string         `json:"department,omitempty"`
	ExpiryDate     *time.Time     `json:"expiryDate,omitempty"`
	Author         AuthorRef      `json:"author"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	IsActive       bool           `json:"isActive"`
}

// IsExpired reports whether the notice has passed its expiry date.
func (n *Notice) IsExpired(now time.Time) bool {
	return n.ExpiryDate != nil && n.ExpiryDate.Before(now)
}

// VisibleTo reports whether a user of the given role may read the notice.
// Admins see everything; students and faculty see notices targeted at "all"
// or at their own audience.
func (n *Notice) VisibleTo(role Role) bool {
	if role == RoleAdmin {
		return true
	}
	switch n.TargetAudience {
	case AudienceAll:
		return true
	case AudienceStudents:
		return role == RoleStudent
	case AudienceFaculty:
		return role == RoleFaculty
	}
	return false
}
