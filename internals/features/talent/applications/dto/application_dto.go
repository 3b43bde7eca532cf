package dto

import (
	"time"

	"github.com/google/uuid"

	"staffhub_backend/internals/features/talent/applications/model"
)

/* ===== REQUEST ===== */

type CreateApplicationRequest struct {
	ApplicationConsultantID uuid.UUID `json:"application_consultant_id" validate:"required"`
	ApplicationCompany      string    `json:"application_company" validate:"required,min=2,max=150"`
	ApplicationPosition     string    `json:"application_position" validate:"required,min=2,max=150"`
	ApplicationJobLink      *string   `json:"application_job_link" validate:"omitempty,url"`
	ApplicationSource       *string   `json:"application_source" validate:"omitempty,max=100"`
	ApplicationStatus       string    `json:"application_status" validate:"omitempty,oneof=applied screening interview offer rejected"`
	ApplicationAppliedDate  *string   `json:"application_applied_date" validate:"omitempty,datetime=2006-01-02"`
	ApplicationNotes        *string   `json:"application_notes"`
}

type UpdateApplicationRequest struct {
	ApplicationCompany     *string `json:"application_company" validate:"omitempty,min=2,max=150"`
	ApplicationPosition    *string `json:"application_position" validate:"omitempty,min=2,max=150"`
	ApplicationJobLink     *string `json:"application_job_link" validate:"omitempty,url"`
	ApplicationSource      *string `json:"application_source" validate:"omitempty,max=100"`
	ApplicationStatus      *string `json:"application_status" validate:"omitempty,oneof=applied screening interview offer rejected"`
	ApplicationAppliedDate *string `json:"application_applied_date" validate:"omitempty,datetime=2006-01-02"`
	ApplicationNotes       *string `json:"application_notes"`
}

/* ===== RESPONSE ===== */

type ApplicationDTO struct {
	ApplicationID           uuid.UUID `json:"application_id"`
	ApplicationConsultantID uuid.UUID `json:"application_consultant_id"`
	ApplicationCompany      string    `json:"application_company"`
	ApplicationPosition     string    `json:"application_position"`
	ApplicationJobLink      *string   `json:"application_job_link,omitempty"`
	ApplicationSource       *string   `json:"application_source,omitempty"`
	ApplicationStatus       string    `json:"application_status"`
	ApplicationAppliedDate  string    `json:"application_applied_date"`
	ApplicationNotes        *string   `json:"application_notes,omitempty"`
	ApplicationCreatedAt    time.Time `json:"application_created_at"`
}

// PipelineCountsDTO: jumlah lamaran per status untuk satu consultant / global.
type PipelineCountsDTO struct {
	Applied   int64 `json:"applied"`
	Screening int64 `json:"screening"`
	Interview int64 `json:"interview"`
	Offer     int64 `json:"offer"`
	Rejected  int64 `json:"rejected"`
	Total     int64 `json:"total"`
}

func ToApplicationDTO(m model.JobApplicationModel) ApplicationDTO {
	return ApplicationDTO{
		ApplicationID:           m.ApplicationID,
		ApplicationConsultantID: m.ApplicationConsultantID,
		ApplicationCompany:      m.ApplicationCompany,
		ApplicationPosition:     m.ApplicationPosition,
		ApplicationJobLink:      m.ApplicationJobLink,
		ApplicationSource:       m.ApplicationSource,
		ApplicationStatus:       m.ApplicationStatus,
		ApplicationAppliedDate:  m.ApplicationAppliedDate.Format("2006-01-02"),
		ApplicationNotes:        m.ApplicationNotes,
		ApplicationCreatedAt:    m.ApplicationCreatedAt,
	}
}

func ToApplicationDTOs(ms []model.JobApplicationModel) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToApplicationDTO(m))
	}
	return out
}
