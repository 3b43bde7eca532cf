package dto

import (
	"time"

	"staffhub_backend/internals/features/work/attendance/model"
	"staffhub_backend/internals/features/work/attendance/service"
)

// ============================
// Request DTO
// ============================

// CheckInRequest: member_id hanya dipakai admin (absen atas nama orang lain);
// staff biasa di-resolve dari token. Time opsional (default jam server).
type CheckInRequest struct {
	MemberID *string `json:"member_id" validate:"omitempty,uuid4"`
	Time     *string `json:"time" validate:"omitempty"`
	Status   *string `json:"status" validate:"omitempty,oneof=present late half-day"`
}

type CheckOutRequest struct {
	MemberID *string `json:"member_id" validate:"omitempty,uuid4"`
	Time     *string `json:"time" validate:"omitempty"`
	Jobs     int     `json:"jobs" validate:"omitempty,min=0"`
}

// CreateAttendanceRequest: entri manual (admin). Satu span langsung lengkap.
type CreateAttendanceRequest struct {
	MemberID string  `json:"member_id" validate:"required,uuid4"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Status   string  `json:"status" validate:"required,oneof=present absent late half-day"`
	CheckIn  *string `json:"check_in" validate:"omitempty"`
	CheckOut *string `json:"check_out" validate:"omitempty"`
	Jobs     int     `json:"jobs" validate:"omitempty,min=0"`
}

type UpdateAttendanceRequest struct {
	Status   *string `json:"status" validate:"omitempty,oneof=present absent late half-day"`
	CheckIn  *string `json:"check_in" validate:"omitempty"`
	CheckOut *string `json:"check_out" validate:"omitempty"`
	Jobs     *int    `json:"jobs" validate:"omitempty,min=0"`
}

// ============================
// Response DTO
// ============================

type AttendanceRecordDTO struct {
	AttendanceRecordID string            `json:"attendance_record_id"`
	MemberID           string            `json:"member_id"`
	Date               string            `json:"date"`
	Status             string            `json:"status"`
	CheckInTime        *string           `json:"check_in_time,omitempty"`
	CheckOutTime       *string           `json:"check_out_time,omitempty"`
	Sessions           []service.Session `json:"sessions"`
	SessionOpen        bool              `json:"session_open"`
	TotalHours         float64           `json:"total_hours"`
	TotalJobs          int               `json:"total_jobs"`
	Notes              string            `json:"notes"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type MemberSummaryDTO struct {
	MemberID   string  `json:"member_id"`
	TotalHours float64 `json:"total_hours"`
	TotalJobs  int     `json:"total_jobs"`
	Days       int     `json:"days"`
}

type TopPerformerDTO struct {
	MemberID string  `json:"member_id"`
	Metric   string  `json:"metric"`
	Total    float64 `json:"total"`
	From     string  `json:"from"`
	To       string  `json:"to"`
}

// ============================
// Converter
// ============================

func ToAttendanceRecordDTO(m model.AttendanceRecordModel) AttendanceRecordDTO {
	sessions := service.DecodeSessions(m.AttendanceRecordNotes)

	notes := m.AttendanceRecordNotes
	if sessions == nil {
		// notes legacy: tampilkan teks bersih tanpa marker "Jobs Applied: N"
		notes = service.StripLegacyMarkers(m.AttendanceRecordNotes)
	}
	if sessions == nil {
		sessions = []service.Session{}
	}

	in, out := "", ""
	if m.AttendanceRecordCheckInTime != nil {
		in = *m.AttendanceRecordCheckInTime
	}
	if m.AttendanceRecordCheckOutTime != nil {
		out = *m.AttendanceRecordCheckOutTime
	}

	return AttendanceRecordDTO{
		AttendanceRecordID: m.AttendanceRecordID.String(),
		MemberID:           m.AttendanceRecordMemberID.String(),
		Date:               m.AttendanceRecordDate.Format("2006-01-02"),
		Status:             m.AttendanceRecordStatus,
		CheckInTime:        m.AttendanceRecordCheckInTime,
		CheckOutTime:       m.AttendanceRecordCheckOutTime,
		Sessions:           sessions,
		SessionOpen:        service.HasOpenSession(sessions),
		TotalHours:         service.TotalHoursForDay(sessions, in, out),
		TotalJobs:          service.TotalJobsForDay(sessions, m.AttendanceRecordNotes),
		Notes:              notes,
		CreatedAt:          m.AttendanceRecordCreatedAt,
		UpdatedAt:          m.AttendanceRecordUpdatedAt,
	}
}

func ToAttendanceRecordDTOs(ms []model.AttendanceRecordModel) []AttendanceRecordDTO {
	out := make([]AttendanceRecordDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAttendanceRecordDTO(m))
	}
	return out
}
