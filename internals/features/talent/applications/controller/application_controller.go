package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffhub_backend/internals/features/talent/applications/dto"
	"staffhub_backend/internals/features/talent/applications/model"
	consultantModel "staffhub_backend/internals/features/talent/consultants/model"
	helper "staffhub_backend/internals/helpers"
)

type ApplicationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* ===== CREATE ===== */

func (ctrl *ApplicationController) CreateApplication(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&consultantModel.ConsultantModel{}).
		Where("consultant_id = ?", req.ApplicationConsultantID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa consultant")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Consultant tidak ditemukan")
	}

	appliedDate := time.Now()
	if req.ApplicationAppliedDate != nil && strings.TrimSpace(*req.ApplicationAppliedDate) != "" {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*req.ApplicationAppliedDate))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format applied date harus YYYY-MM-DD")
		}
		appliedDate = t
	}

	status := req.ApplicationStatus
	if status == "" {
		status = "applied"
	}

	m := model.JobApplicationModel{
		ApplicationConsultantID: req.ApplicationConsultantID,
		ApplicationCompany:      strings.TrimSpace(req.ApplicationCompany),
		ApplicationPosition:     strings.TrimSpace(req.ApplicationPosition),
		ApplicationJobLink:      req.ApplicationJobLink,
		ApplicationSource:       req.ApplicationSource,
		ApplicationStatus:       status,
		ApplicationAppliedDate:  appliedDate,
		ApplicationNotes:        req.ApplicationNotes,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lamaran")
	}

	return helper.JsonCreated(c, "Lamaran berhasil dibuat", dto.ToApplicationDTO(m))
}

/* ===== READ ===== */

func (ctrl *ApplicationController) GetApplicationByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lamaran tidak valid")
	}

	var m model.JobApplicationModel
	if err := ctrl.DB.First(&m, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lamaran")
	}

	return helper.JsonOK(c, "ok", dto.ToApplicationDTO(m))
}

func (ctrl *ApplicationController) ListApplications(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.JobApplicationModel{})

	if consultant := strings.TrimSpace(c.Query("consultant_id")); consultant != "" {
		consultantID, err := uuid.Parse(consultant)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "consultant_id tidak valid")
		}
		q = q.Where("application_consultant_id = ?", consultantID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("application_status = ?", status)
	}
	if company := strings.TrimSpace(c.Query("company")); company != "" {
		q = q.Where("application_company ILIKE ?", "%"+company+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung lamaran")
	}

	var rows []model.JobApplicationModel
	if err := q.
		Order("application_applied_date DESC, application_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar lamaran")
	}

	return helper.JsonList(c, "ok", dto.ToApplicationDTOs(rows), helper.BuildPagination(total, paging, len(rows)))
}

// GetPipelineCounts menghitung jumlah lamaran per status.
// Opsional difilter per consultant via ?consultant_id=.
func (ctrl *ApplicationController) GetPipelineCounts(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.JobApplicationModel{})

	if consultant := strings.TrimSpace(c.Query("consultant_id")); consultant != "" {
		consultantID, err := uuid.Parse(consultant)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "consultant_id tidak valid")
		}
		q = q.Where("application_consultant_id = ?", consultantID)
	}

	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := q.
		Select("application_status AS status, COUNT(*) AS total").
		Group("application_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pipeline")
	}

	var counts dto.PipelineCountsDTO
	for _, r := range rows {
		switch r.Status {
		case "applied":
			counts.Applied = r.Total
		case "screening":
			counts.Screening = r.Total
		case "interview":
			counts.Interview = r.Total
		case "offer":
			counts.Offer = r.Total
		case "rejected":
			counts.Rejected = r.Total
		}
		counts.Total += r.Total
	}

	return helper.JsonOK(c, "ok", counts)
}

/* ===== UPDATE ===== */

func (ctrl *ApplicationController) UpdateApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lamaran tidak valid")
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.JobApplicationModel
	if err := ctrl.DB.First(&m, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lamaran")
	}

	if req.ApplicationCompany != nil {
		m.ApplicationCompany = strings.TrimSpace(*req.ApplicationCompany)
	}
	if req.ApplicationPosition != nil {
		m.ApplicationPosition = strings.TrimSpace(*req.ApplicationPosition)
	}
	if req.ApplicationJobLink != nil {
		m.ApplicationJobLink = req.ApplicationJobLink
	}
	if req.ApplicationSource != nil {
		m.ApplicationSource = req.ApplicationSource
	}
	if req.ApplicationStatus != nil {
		m.ApplicationStatus = *req.ApplicationStatus
	}
	if req.ApplicationAppliedDate != nil {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*req.ApplicationAppliedDate))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format applied date harus YYYY-MM-DD")
		}
		m.ApplicationAppliedDate = t
	}
	if req.ApplicationNotes != nil {
		m.ApplicationNotes = req.ApplicationNotes
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui lamaran")
	}

	return helper.JsonUpdated(c, "Lamaran berhasil diperbarui", dto.ToApplicationDTO(m))
}

/* ===== DELETE ===== */

func (ctrl *ApplicationController) DeleteApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lamaran tidak valid")
	}

	res := ctrl.DB.Delete(&model.JobApplicationModel{}, "application_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lamaran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lamaran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Lamaran berhasil dihapus", fiber.Map{"application_id": id})
}
