package dto

import (
	"time"

	"github.com/google/uuid"

	"staffhub_backend/internals/features/talent/interviews/model"
	"staffhub_backend/internals/features/talent/interviews/service"
)

/* ===== REQUEST ===== */

type CreateInterviewRequest struct {
	InterviewApplicationID     uuid.UUID `json:"interview_application_id" validate:"required"`
	InterviewScheduledAt       time.Time `json:"interview_scheduled_at" validate:"required"`
	InterviewCandidateTimezone string    `json:"interview_candidate_timezone" validate:"required,max=64"`
	InterviewDurationMinutes   int       `json:"interview_duration_minutes" validate:"omitempty,min=15,max=480"`
	InterviewRound             int       `json:"interview_round" validate:"omitempty,min=1,max=10"`
	InterviewMode              string    `json:"interview_mode" validate:"omitempty,oneof=phone video onsite"`
	InterviewMeetingLink       *string   `json:"interview_meeting_link" validate:"omitempty,url"`
	InterviewInterviewerName   *string   `json:"interview_interviewer_name" validate:"omitempty,max=100"`
	InterviewNotes             *string   `json:"interview_notes"`
}

type UpdateInterviewRequest struct {
	InterviewScheduledAt       *time.Time `json:"interview_scheduled_at"`
	InterviewCandidateTimezone *string    `json:"interview_candidate_timezone" validate:"omitempty,max=64"`
	InterviewDurationMinutes   *int       `json:"interview_duration_minutes" validate:"omitempty,min=15,max=480"`
	InterviewRound             *int       `json:"interview_round" validate:"omitempty,min=1,max=10"`
	InterviewMode              *string    `json:"interview_mode" validate:"omitempty,oneof=phone video onsite"`
	InterviewMeetingLink       *string    `json:"interview_meeting_link" validate:"omitempty,url"`
	InterviewInterviewerName   *string    `json:"interview_interviewer_name" validate:"omitempty,max=100"`
	InterviewStatus            *string    `json:"interview_status" validate:"omitempty,oneof=scheduled completed cancelled no_show"`
	InterviewNotes             *string    `json:"interview_notes"`
}

/* ===== RESPONSE ===== */

type InterviewDTO struct {
	InterviewID                uuid.UUID `json:"interview_id"`
	InterviewApplicationID     uuid.UUID `json:"interview_application_id"`
	InterviewConsultantID      uuid.UUID `json:"interview_consultant_id"`
	InterviewScheduledAt       time.Time `json:"interview_scheduled_at"`
	InterviewCandidateTimezone string    `json:"interview_candidate_timezone"`
	InterviewDurationMinutes   int       `json:"interview_duration_minutes"`
	InterviewRound             int       `json:"interview_round"`
	InterviewMode              string    `json:"interview_mode"`
	InterviewMeetingLink       *string   `json:"interview_meeting_link,omitempty"`
	InterviewInterviewerName   *string   `json:"interview_interviewer_name,omitempty"`
	InterviewStatus            string    `json:"interview_status"`
	InterviewReminderSent      bool      `json:"interview_reminder_sent"`
	InterviewNotes             *string   `json:"interview_notes,omitempty"`

	// Jadwal dalam zona agency + zona kandidat sekaligus.
	InterviewSchedule *service.RenderedSchedule `json:"interview_schedule,omitempty"`

	InterviewCreatedAt time.Time `json:"interview_created_at"`
}

func ToInterviewDTO(m model.InterviewModel, agencyZone string) InterviewDTO {
	out := InterviewDTO{
		InterviewID:                m.InterviewID,
		InterviewApplicationID:     m.InterviewApplicationID,
		InterviewConsultantID:      m.InterviewConsultantID,
		InterviewScheduledAt:       m.InterviewScheduledAt,
		InterviewCandidateTimezone: m.InterviewCandidateTimezone,
		InterviewDurationMinutes:   m.InterviewDurationMinutes,
		InterviewRound:             m.InterviewRound,
		InterviewMode:              m.InterviewMode,
		InterviewMeetingLink:       m.InterviewMeetingLink,
		InterviewInterviewerName:   m.InterviewInterviewerName,
		InterviewStatus:            m.InterviewStatus,
		InterviewReminderSent:      m.InterviewReminderSent,
		InterviewNotes:             m.InterviewNotes,
		InterviewCreatedAt:         m.InterviewCreatedAt,
	}
	if sched, err := service.RenderSchedule(m.InterviewScheduledAt, agencyZone, m.InterviewCandidateTimezone); err == nil {
		out.InterviewSchedule = &sched
	}
	return out
}

func ToInterviewDTOs(ms []model.InterviewModel, agencyZone string) []InterviewDTO {
	out := make([]InterviewDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToInterviewDTO(m, agencyZone))
	}
	return out
}
