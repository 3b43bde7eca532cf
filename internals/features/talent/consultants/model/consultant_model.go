package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ConsultantModel: kandidat/bench consultant yang dipasarkan agency.
// Status: active | placed | inactive | bench
type ConsultantModel struct {
	ConsultantID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:consultant_id" json:"consultant_id"`

	ConsultantFullName string  `gorm:"size:100;not null;column:consultant_full_name" json:"consultant_full_name"`
	ConsultantEmail    string  `gorm:"size:255;unique;not null;column:consultant_email" json:"consultant_email"`
	ConsultantPhone    *string `gorm:"size:30;column:consultant_phone" json:"consultant_phone,omitempty"`

	ConsultantVisaStatus *string  `gorm:"size:50;column:consultant_visa_status" json:"consultant_visa_status,omitempty"`
	ConsultantLocation   *string  `gorm:"size:100;column:consultant_location" json:"consultant_location,omitempty"`
	ConsultantRate       *float64 `gorm:"type:numeric(10,2);column:consultant_rate" json:"consultant_rate,omitempty"`

	ConsultantSkills pq.StringArray `gorm:"type:text[];column:consultant_skills" json:"consultant_skills,omitempty"`

	ConsultantStatus    string  `gorm:"type:varchar(20);not null;default:'bench';column:consultant_status" json:"consultant_status"`
	ConsultantResumeURL *string `gorm:"type:text;column:consultant_resume_url" json:"consultant_resume_url,omitempty"`

	ConsultantRecruiterMemberID *uuid.UUID `gorm:"type:uuid;index;column:consultant_recruiter_member_id" json:"consultant_recruiter_member_id,omitempty"`

	ConsultantCreatedAt time.Time      `gorm:"column:consultant_created_at;autoCreateTime" json:"consultant_created_at"`
	ConsultantUpdatedAt time.Time      `gorm:"column:consultant_updated_at;autoUpdateTime" json:"consultant_updated_at"`
	ConsultantDeletedAt gorm.DeletedAt `gorm:"column:consultant_deleted_at;index" json:"consultant_deleted_at,omitempty"`
}

func (ConsultantModel) TableName() string { return "consultants" }
