package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffhub_backend/internals/configs"
	applicationModel "staffhub_backend/internals/features/talent/applications/model"
	"staffhub_backend/internals/features/talent/interviews/dto"
	"staffhub_backend/internals/features/talent/interviews/model"
	"staffhub_backend/internals/features/talent/interviews/service"
	helper "staffhub_backend/internals/helpers"
)

type InterviewController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInterviewController(db *gorm.DB) *InterviewController {
	return &InterviewController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* ===== CREATE ===== */

func (ctrl *InterviewController) CreateInterview(c *fiber.Ctx) error {
	var req dto.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := service.ValidateTimezone(req.InterviewCandidateTimezone); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var app applicationModel.JobApplicationModel
	if err := ctrl.DB.First(&app, "application_id = ?", req.InterviewApplicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa lamaran")
	}

	duration := req.InterviewDurationMinutes
	if duration == 0 {
		duration = 60
	}
	round := req.InterviewRound
	if round == 0 {
		round = 1
	}
	mode := req.InterviewMode
	if mode == "" {
		mode = "video"
	}

	m := model.InterviewModel{
		InterviewApplicationID:     app.ApplicationID,
		InterviewConsultantID:      app.ApplicationConsultantID,
		InterviewScheduledAt:       req.InterviewScheduledAt,
		InterviewCandidateTimezone: req.InterviewCandidateTimezone,
		InterviewDurationMinutes:   duration,
		InterviewRound:             round,
		InterviewMode:              mode,
		InterviewMeetingLink:       req.InterviewMeetingLink,
		InterviewInterviewerName:   req.InterviewInterviewerName,
		InterviewNotes:             req.InterviewNotes,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jadwal interview")
	}

	return helper.JsonCreated(c, "Interview berhasil dijadwalkan", dto.ToInterviewDTO(m, configs.AgencyTimezone))
}

/* ===== READ ===== */

func (ctrl *InterviewController) GetInterviewByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID interview tidak valid")
	}

	var m model.InterviewModel
	if err := ctrl.DB.First(&m, "interview_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Interview tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil interview")
	}

	return helper.JsonOK(c, "ok", dto.ToInterviewDTO(m, configs.AgencyTimezone))
}

func (ctrl *InterviewController) ListInterviews(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.InterviewModel{})

	if consultant := strings.TrimSpace(c.Query("consultant_id")); consultant != "" {
		consultantID, err := uuid.Parse(consultant)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "consultant_id tidak valid")
		}
		q = q.Where("interview_consultant_id = ?", consultantID)
	}
	if application := strings.TrimSpace(c.Query("application_id")); application != "" {
		applicationID, err := uuid.Parse(application)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "application_id tidak valid")
		}
		q = q.Where("interview_application_id = ?", applicationID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("interview_status = ?", status)
	}
	if c.QueryBool("upcoming") {
		q = q.Where("interview_scheduled_at >= ? AND interview_status = 'scheduled'", time.Now())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung interview")
	}

	var rows []model.InterviewModel
	if err := q.
		Order("interview_scheduled_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar interview")
	}

	return helper.JsonList(c, "ok", dto.ToInterviewDTOs(rows, configs.AgencyTimezone), helper.BuildPagination(total, paging, len(rows)))
}

/* ===== UPDATE ===== */

func (ctrl *InterviewController) UpdateInterview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID interview tidak valid")
	}

	var req dto.UpdateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.InterviewModel
	if err := ctrl.DB.First(&m, "interview_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Interview tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil interview")
	}

	if req.InterviewScheduledAt != nil {
		m.InterviewScheduledAt = *req.InterviewScheduledAt
		// jadwal berubah: reminder dikirim ulang untuk jadwal baru
		m.InterviewReminderSent = false
	}
	if req.InterviewCandidateTimezone != nil {
		if err := service.ValidateTimezone(*req.InterviewCandidateTimezone); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		m.InterviewCandidateTimezone = *req.InterviewCandidateTimezone
	}
	if req.InterviewDurationMinutes != nil {
		m.InterviewDurationMinutes = *req.InterviewDurationMinutes
	}
	if req.InterviewRound != nil {
		m.InterviewRound = *req.InterviewRound
	}
	if req.InterviewMode != nil {
		m.InterviewMode = *req.InterviewMode
	}
	if req.InterviewMeetingLink != nil {
		m.InterviewMeetingLink = req.InterviewMeetingLink
	}
	if req.InterviewInterviewerName != nil {
		m.InterviewInterviewerName = req.InterviewInterviewerName
	}
	if req.InterviewStatus != nil {
		m.InterviewStatus = *req.InterviewStatus
	}
	if req.InterviewNotes != nil {
		m.InterviewNotes = req.InterviewNotes
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui interview")
	}

	return helper.JsonUpdated(c, "Interview berhasil diperbarui", dto.ToInterviewDTO(m, configs.AgencyTimezone))
}

/* ===== DELETE ===== */

func (ctrl *InterviewController) DeleteInterview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID interview tidak valid")
	}

	res := ctrl.DB.Delete(&model.InterviewModel{}, "interview_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus interview")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Interview tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Interview berhasil dihapus", fiber.Map{"interview_id": id})
}
