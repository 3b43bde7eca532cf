package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"staffhub_backend/internals/features/talent/consultants/dto"
	"staffhub_backend/internals/features/talent/consultants/model"
	helper "staffhub_backend/internals/helpers"
	helperOSS "staffhub_backend/internals/helpers/oss"
)

type ConsultantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewConsultantController(db *gorm.DB) *ConsultantController {
	return &ConsultantController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* ===== CREATE ===== */

func (ctrl *ConsultantController) CreateConsultant(c *fiber.Ctx) error {
	var req dto.CreateConsultantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.ConsultantEmail))

	var count int64
	if err := ctrl.DB.Model(&model.ConsultantModel{}).
		Where("consultant_email = ?", email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email consultant sudah terdaftar")
	}

	status := req.ConsultantStatus
	if status == "" {
		status = "bench"
	}

	m := model.ConsultantModel{
		ConsultantFullName:          strings.TrimSpace(req.ConsultantFullName),
		ConsultantEmail:             email,
		ConsultantPhone:             req.ConsultantPhone,
		ConsultantVisaStatus:        req.ConsultantVisaStatus,
		ConsultantLocation:          req.ConsultantLocation,
		ConsultantRate:              req.ConsultantRate,
		ConsultantSkills:            pq.StringArray(req.ConsultantSkills),
		ConsultantStatus:            status,
		ConsultantRecruiterMemberID: req.ConsultantRecruiterMemberID,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat consultant")
	}

	return helper.JsonCreated(c, "Consultant berhasil dibuat", dto.ToConsultantDTO(m))
}

/* ===== READ ===== */

func (ctrl *ConsultantController) GetConsultantByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID consultant tidak valid")
	}

	var m model.ConsultantModel
	if err := ctrl.DB.First(&m, "consultant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Consultant tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil consultant")
	}

	return helper.JsonOK(c, "ok", dto.ToConsultantDTO(m))
}

func (ctrl *ConsultantController) ListConsultants(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ConsultantModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("consultant_full_name ILIKE ? OR consultant_email ILIKE ?", like, like)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("consultant_status = ?", status)
	}
	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		q = q.Where("consultant_location ILIKE ?", "%"+loc+"%")
	}
	if skill := strings.TrimSpace(c.Query("skill")); skill != "" {
		q = q.Where("? = ANY(consultant_skills)", skill)
	}
	if recruiter := strings.TrimSpace(c.Query("recruiter_id")); recruiter != "" {
		memberID, err := uuid.Parse(recruiter)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "recruiter_id tidak valid")
		}
		q = q.Where("consultant_recruiter_member_id = ?", memberID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung consultant")
	}

	var rows []model.ConsultantModel
	if err := q.
		Order("consultant_full_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar consultant")
	}

	return helper.JsonList(c, "ok", dto.ToConsultantDTOs(rows), helper.BuildPagination(total, paging, len(rows)))
}

/* ===== UPDATE ===== */

func (ctrl *ConsultantController) UpdateConsultant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID consultant tidak valid")
	}

	var req dto.UpdateConsultantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ConsultantModel
	if err := ctrl.DB.First(&m, "consultant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Consultant tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil consultant")
	}

	if req.ConsultantFullName != nil {
		m.ConsultantFullName = strings.TrimSpace(*req.ConsultantFullName)
	}
	if req.ConsultantPhone != nil {
		m.ConsultantPhone = req.ConsultantPhone
	}
	if req.ConsultantVisaStatus != nil {
		m.ConsultantVisaStatus = req.ConsultantVisaStatus
	}
	if req.ConsultantLocation != nil {
		m.ConsultantLocation = req.ConsultantLocation
	}
	if req.ConsultantRate != nil {
		m.ConsultantRate = req.ConsultantRate
	}
	if req.ConsultantSkills != nil {
		m.ConsultantSkills = pq.StringArray(req.ConsultantSkills)
	}
	if req.ConsultantStatus != nil {
		m.ConsultantStatus = *req.ConsultantStatus
	}
	if req.ConsultantRecruiterMemberID != nil {
		m.ConsultantRecruiterMemberID = req.ConsultantRecruiterMemberID
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui consultant")
	}

	return helper.JsonUpdated(c, "Consultant berhasil diperbarui", dto.ToConsultantDTO(m))
}

/* ===== RESUME UPLOAD ===== */

// UploadResume menerima multipart field "resume", upload ke OSS, dan
// mengganti resume lama (file lama dihapus best-effort).
func (ctrl *ConsultantController) UploadResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID consultant tidak valid")
	}

	var m model.ConsultantModel
	if err := ctrl.DB.First(&m, "consultant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Consultant tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil consultant")
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File resume wajib diupload di field 'resume'")
	}

	blobSvc, err := helperOSS.NewBlobServiceFromEnv()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Storage belum dikonfigurasi")
	}

	blob, err := blobSvc.UploadMultipart(fh, "resumes/"+m.ConsultantID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengupload resume")
	}

	oldURL := m.ConsultantResumeURL
	m.ConsultantResumeURL = &blob.PublicURL
	if err := ctrl.DB.Model(&m).
		Update("consultant_resume_url", blob.PublicURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan URL resume")
	}

	if oldURL != nil && *oldURL != "" {
		if err := blobSvc.DeleteByPublicURL(*oldURL); err != nil {
			log.Printf("[ERROR] hapus resume lama: %v", err)
		}
	}

	return helper.JsonUpdated(c, "Resume berhasil diupload", dto.ToConsultantDTO(m))
}

/* ===== DELETE ===== */

func (ctrl *ConsultantController) DeleteConsultant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID consultant tidak valid")
	}

	res := ctrl.DB.Delete(&model.ConsultantModel{}, "consultant_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus consultant")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Consultant tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Consultant berhasil dihapus", fiber.Map{"consultant_id": id})
}
