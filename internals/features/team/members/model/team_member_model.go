package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TeamMemberModel: anggota tim agency (recruiter/sourcer/admin).
// Akses dashboard baru aktif setelah is_approved = true.
type TeamMemberModel struct {
	TeamMemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:team_member_id" json:"team_member_id"`

	TeamMemberUserID *uuid.UUID `gorm:"type:uuid;unique;column:team_member_user_id" json:"team_member_user_id,omitempty"`

	TeamMemberFullName   string  `gorm:"size:100;not null;column:team_member_full_name" json:"team_member_full_name"`
	TeamMemberEmail      string  `gorm:"size:255;unique;not null;column:team_member_email" json:"team_member_email"`
	TeamMemberPhone      *string `gorm:"size:30;column:team_member_phone" json:"team_member_phone,omitempty"`
	TeamMemberPosition   *string `gorm:"size:100;column:team_member_position" json:"team_member_position,omitempty"`
	TeamMemberDepartment *string `gorm:"size:100;column:team_member_department" json:"team_member_department,omitempty"`

	TeamMemberSkills pq.StringArray `gorm:"type:text[];column:team_member_skills" json:"team_member_skills,omitempty"`

	TeamMemberAvatarURL *string `gorm:"type:text;column:team_member_avatar_url" json:"team_member_avatar_url,omitempty"`

	TeamMemberIsAdmin    bool `gorm:"not null;default:false;column:team_member_is_admin" json:"team_member_is_admin"`
	TeamMemberIsApproved bool `gorm:"not null;default:false;column:team_member_is_approved" json:"team_member_is_approved"`

	TeamMemberCreatedAt time.Time      `gorm:"column:team_member_created_at;autoCreateTime" json:"team_member_created_at"`
	TeamMemberUpdatedAt time.Time      `gorm:"column:team_member_updated_at;autoUpdateTime" json:"team_member_updated_at"`
	TeamMemberDeletedAt gorm.DeletedAt `gorm:"column:team_member_deleted_at;index" json:"team_member_deleted_at,omitempty"`
}

func (TeamMemberModel) TableName() string { return "team_members" }
