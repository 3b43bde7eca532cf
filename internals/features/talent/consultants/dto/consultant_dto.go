package dto

import (
	"time"

	"github.com/google/uuid"

	"staffhub_backend/internals/features/talent/consultants/model"
)

/* ===== REQUEST ===== */

type CreateConsultantRequest struct {
	ConsultantFullName   string   `json:"consultant_full_name" validate:"required,min=3,max=100"`
	ConsultantEmail      string   `json:"consultant_email" validate:"required,email"`
	ConsultantPhone      *string  `json:"consultant_phone" validate:"omitempty,max=30"`
	ConsultantVisaStatus *string  `json:"consultant_visa_status" validate:"omitempty,max=50"`
	ConsultantLocation   *string  `json:"consultant_location" validate:"omitempty,max=100"`
	ConsultantRate       *float64 `json:"consultant_rate" validate:"omitempty,min=0"`
	ConsultantSkills     []string `json:"consultant_skills" validate:"omitempty,dive,min=1,max=50"`
	ConsultantStatus     string   `json:"consultant_status" validate:"omitempty,oneof=active placed inactive bench"`

	ConsultantRecruiterMemberID *uuid.UUID `json:"consultant_recruiter_member_id"`
}

type UpdateConsultantRequest struct {
	ConsultantFullName   *string  `json:"consultant_full_name" validate:"omitempty,min=3,max=100"`
	ConsultantPhone      *string  `json:"consultant_phone" validate:"omitempty,max=30"`
	ConsultantVisaStatus *string  `json:"consultant_visa_status" validate:"omitempty,max=50"`
	ConsultantLocation   *string  `json:"consultant_location" validate:"omitempty,max=100"`
	ConsultantRate       *float64 `json:"consultant_rate" validate:"omitempty,min=0"`
	ConsultantSkills     []string `json:"consultant_skills" validate:"omitempty,dive,min=1,max=50"`
	ConsultantStatus     *string  `json:"consultant_status" validate:"omitempty,oneof=active placed inactive bench"`

	ConsultantRecruiterMemberID *uuid.UUID `json:"consultant_recruiter_member_id"`
}

/* ===== RESPONSE ===== */

type ConsultantDTO struct {
	ConsultantID                uuid.UUID  `json:"consultant_id"`
	ConsultantFullName          string     `json:"consultant_full_name"`
	ConsultantEmail             string     `json:"consultant_email"`
	ConsultantPhone             *string    `json:"consultant_phone,omitempty"`
	ConsultantVisaStatus        *string    `json:"consultant_visa_status,omitempty"`
	ConsultantLocation          *string    `json:"consultant_location,omitempty"`
	ConsultantRate              *float64   `json:"consultant_rate,omitempty"`
	ConsultantSkills            []string   `json:"consultant_skills"`
	ConsultantStatus            string     `json:"consultant_status"`
	ConsultantResumeURL         *string    `json:"consultant_resume_url,omitempty"`
	ConsultantRecruiterMemberID *uuid.UUID `json:"consultant_recruiter_member_id,omitempty"`
	ConsultantCreatedAt         time.Time  `json:"consultant_created_at"`
	ConsultantUpdatedAt         time.Time  `json:"consultant_updated_at"`
}

func ToConsultantDTO(m model.ConsultantModel) ConsultantDTO {
	skills := []string(m.ConsultantSkills)
	if skills == nil {
		skills = []string{}
	}
	return ConsultantDTO{
		ConsultantID:                m.ConsultantID,
		ConsultantFullName:          m.ConsultantFullName,
		ConsultantEmail:             m.ConsultantEmail,
		ConsultantPhone:             m.ConsultantPhone,
		ConsultantVisaStatus:        m.ConsultantVisaStatus,
		ConsultantLocation:          m.ConsultantLocation,
		ConsultantRate:              m.ConsultantRate,
		ConsultantSkills:            skills,
		ConsultantStatus:            m.ConsultantStatus,
		ConsultantResumeURL:         m.ConsultantResumeURL,
		ConsultantRecruiterMemberID: m.ConsultantRecruiterMemberID,
		ConsultantCreatedAt:         m.ConsultantCreatedAt,
		ConsultantUpdatedAt:         m.ConsultantUpdatedAt,
	}
}

func ToConsultantDTOs(ms []model.ConsultantModel) []ConsultantDTO {
	out := make([]ConsultantDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToConsultantDTO(m))
	}
	return out
}
