package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoticeVisibleTo(t *testing.T) {
	tests := []struct {
		audience TargetAudience
		role     Role
		want     bool
	}{
		{AudienceAll, RoleStudent, true},
		{AudienceAll, RoleFaculty, true},
		{AudienceAll, RoleAdmin, true},
		{AudienceStudents, RoleStudent, true},
		{AudienceStudents, RoleFaculty, false},
		{AudienceStudents, RoleAdmin, true},
		{AudienceFaculty, RoleStudent, false},
		{AudienceFaculty, RoleFaculty, true},
		{AudienceFaculty, RoleAdmin, true},
	}

	for _, tt := range tests {
		n := Notice{TargetAudience: tt.audience}
		assert.Equal(t, tt.want, n.VisibleTo(tt.role),
			"audience=%s role=%s", tt.audience, tt.role)
	}
}

func TestNoticeIsExpired(t *testing.T) {
	now := time.Now()

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired := Notice{ExpiryDate: &past}
	live := Notice{ExpiryDate: &future}
	forever := Notice{}

	assert.True(t, expired.IsExpired(now))
	assert.False(t, live.IsExpired(now))
	assert.False(t, forever.IsExpired(now))
}
