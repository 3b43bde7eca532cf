package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobApplicationModel: lamaran yang disubmit untuk seorang consultant.
// Status pipeline: applied | screening | interview | offer | rejected
type JobApplicationModel struct {
	ApplicationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:application_id" json:"application_id"`

	ApplicationConsultantID uuid.UUID `gorm:"type:uuid;not null;index;column:application_consultant_id" json:"application_consultant_id"`

	ApplicationCompany  string  `gorm:"size:150;not null;column:application_company" json:"application_company"`
	ApplicationPosition string  `gorm:"size:150;not null;column:application_position" json:"application_position"`
	ApplicationJobLink  *string `gorm:"type:text;column:application_job_link" json:"application_job_link,omitempty"`
	ApplicationSource   *string `gorm:"size:100;column:application_source" json:"application_source,omitempty"`

	ApplicationStatus string `gorm:"type:varchar(20);not null;default:'applied';column:application_status" json:"application_status"`

	ApplicationAppliedDate time.Time `gorm:"type:date;not null;column:application_applied_date" json:"application_applied_date"`
	ApplicationNotes       *string   `gorm:"type:text;column:application_notes" json:"application_notes,omitempty"`

	ApplicationCreatedAt time.Time      `gorm:"column:application_created_at;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt time.Time      `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at"`
	ApplicationDeletedAt gorm.DeletedAt `gorm:"column:application_deleted_at;index" json:"application_deleted_at,omitempty"`
}

func (JobApplicationModel) TableName() string { return "job_applications" }
