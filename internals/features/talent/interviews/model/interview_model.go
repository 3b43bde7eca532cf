package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterviewModel: jadwal interview untuk sebuah lamaran.
// Status: scheduled | completed | cancelled | no_show
// Mode: phone | video | onsite
type InterviewModel struct {
	InterviewID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:interview_id" json:"interview_id"`

	InterviewApplicationID uuid.UUID `gorm:"type:uuid;not null;index;column:interview_application_id" json:"interview_application_id"`
	InterviewConsultantID  uuid.UUID `gorm:"type:uuid;not null;index;column:interview_consultant_id" json:"interview_consultant_id"`

	InterviewScheduledAt       time.Time `gorm:"type:timestamptz;not null;index;column:interview_scheduled_at" json:"interview_scheduled_at"`
	InterviewCandidateTimezone string    `gorm:"size:64;not null;default:'Asia/Jakarta';column:interview_candidate_timezone" json:"interview_candidate_timezone"`

	InterviewDurationMinutes int     `gorm:"not null;default:60;column:interview_duration_minutes" json:"interview_duration_minutes"`
	InterviewRound           int     `gorm:"not null;default:1;column:interview_round" json:"interview_round"`
	InterviewMode            string  `gorm:"type:varchar(20);not null;default:'video';column:interview_mode" json:"interview_mode"`
	InterviewMeetingLink     *string `gorm:"type:text;column:interview_meeting_link" json:"interview_meeting_link,omitempty"`
	InterviewInterviewerName *string `gorm:"size:100;column:interview_interviewer_name" json:"interview_interviewer_name,omitempty"`

	InterviewStatus       string `gorm:"type:varchar(20);not null;default:'scheduled';column:interview_status" json:"interview_status"`
	InterviewReminderSent bool   `gorm:"not null;default:false;column:interview_reminder_sent" json:"interview_reminder_sent"`

	InterviewNotes *string `gorm:"type:text;column:interview_notes" json:"interview_notes,omitempty"`

	InterviewCreatedAt time.Time      `gorm:"column:interview_created_at;autoCreateTime" json:"interview_created_at"`
	InterviewUpdatedAt time.Time      `gorm:"column:interview_updated_at;autoUpdateTime" json:"interview_updated_at"`
	InterviewDeletedAt gorm.DeletedAt `gorm:"column:interview_deleted_at;index" json:"interview_deleted_at,omitempty"`
}

func (InterviewModel) TableName() string { return "interviews" }
