package dto

import (
	"time"

	"github.com/google/uuid"

	"staffhub_backend/internals/features/team/members/model"
)

/* ===== REQUEST ===== */

type CreateTeamMemberRequest struct {
	TeamMemberFullName   string   `json:"team_member_full_name" validate:"required,min=3,max=100"`
	TeamMemberEmail      string   `json:"team_member_email" validate:"required,email"`
	TeamMemberPhone      *string  `json:"team_member_phone" validate:"omitempty,max=30"`
	TeamMemberPosition   *string  `json:"team_member_position" validate:"omitempty,max=100"`
	TeamMemberDepartment *string  `json:"team_member_department" validate:"omitempty,max=100"`
	TeamMemberSkills     []string `json:"team_member_skills" validate:"omitempty,dive,min=1,max=50"`
	TeamMemberIsAdmin    bool     `json:"team_member_is_admin"`
}

type UpdateTeamMemberRequest struct {
	TeamMemberFullName   *string  `json:"team_member_full_name" validate:"omitempty,min=3,max=100"`
	TeamMemberPhone      *string  `json:"team_member_phone" validate:"omitempty,max=30"`
	TeamMemberPosition   *string  `json:"team_member_position" validate:"omitempty,max=100"`
	TeamMemberDepartment *string  `json:"team_member_department" validate:"omitempty,max=100"`
	TeamMemberSkills     []string `json:"team_member_skills" validate:"omitempty,dive,min=1,max=50"`
	TeamMemberIsAdmin    *bool    `json:"team_member_is_admin"`
}

// BulkProvisionRequest: daftar member yang diproses berurutan.
// Baris gagal dilaporkan per-baris tanpa menggagalkan baris lain.
type BulkProvisionRequest struct {
	Members []CreateTeamMemberRequest `json:"members" validate:"required,min=1,max=200,dive"`
}

/* ===== RESPONSE ===== */

type TeamMemberDTO struct {
	TeamMemberID         uuid.UUID  `json:"team_member_id"`
	TeamMemberUserID     *uuid.UUID `json:"team_member_user_id,omitempty"`
	TeamMemberFullName   string     `json:"team_member_full_name"`
	TeamMemberEmail      string     `json:"team_member_email"`
	TeamMemberPhone      *string    `json:"team_member_phone,omitempty"`
	TeamMemberPosition   *string    `json:"team_member_position,omitempty"`
	TeamMemberDepartment *string    `json:"team_member_department,omitempty"`
	TeamMemberSkills     []string   `json:"team_member_skills"`
	TeamMemberAvatarURL  *string    `json:"team_member_avatar_url,omitempty"`
	TeamMemberIsAdmin    bool       `json:"team_member_is_admin"`
	TeamMemberIsApproved bool       `json:"team_member_is_approved"`
	TeamMemberCreatedAt  time.Time  `json:"team_member_created_at"`
}

type BulkProvisionRowResult struct {
	Row          int        `json:"row"`
	Email        string     `json:"email"`
	TeamMemberID *uuid.UUID `json:"team_member_id,omitempty"`
	Error        string     `json:"error,omitempty"`
}

type BulkProvisionResponse struct {
	Total   int                      `json:"total"`
	Created int                      `json:"created"`
	Failed  int                      `json:"failed"`
	Results []BulkProvisionRowResult `json:"results"`
}

func ToTeamMemberDTO(m model.TeamMemberModel) TeamMemberDTO {
	skills := []string(m.TeamMemberSkills)
	if skills == nil {
		skills = []string{}
	}
	return TeamMemberDTO{
		TeamMemberID:         m.TeamMemberID,
		TeamMemberUserID:     m.TeamMemberUserID,
		TeamMemberFullName:   m.TeamMemberFullName,
		TeamMemberEmail:      m.TeamMemberEmail,
		TeamMemberPhone:      m.TeamMemberPhone,
		TeamMemberPosition:   m.TeamMemberPosition,
		TeamMemberDepartment: m.TeamMemberDepartment,
		TeamMemberSkills:     skills,
		TeamMemberAvatarURL:  m.TeamMemberAvatarURL,
		TeamMemberIsAdmin:    m.TeamMemberIsAdmin,
		TeamMemberIsApproved: m.TeamMemberIsApproved,
		TeamMemberCreatedAt:  m.TeamMemberCreatedAt,
	}
}

func ToTeamMemberDTOs(ms []model.TeamMemberModel) []TeamMemberDTO {
	out := make([]TeamMemberDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTeamMemberDTO(m))
	}
	return out
}
