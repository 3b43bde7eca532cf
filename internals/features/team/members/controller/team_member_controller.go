package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staffhub_backend/internals/constants"
	"staffhub_backend/internals/features/team/members/dto"
	"staffhub_backend/internals/features/team/members/model"
	"staffhub_backend/internals/features/team/members/service"
	userModel "staffhub_backend/internals/features/users/user/model"
	helper "staffhub_backend/internals/helpers"
	"staffhub_backend/internals/helpers/mailer"
)

type TeamMemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeamMemberController(db *gorm.DB) *TeamMemberController {
	return &TeamMemberController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* ===== CREATE ===== */

// CreateTeamMember membuat satu member tanpa akun login (mis. kandidat internal
// yang belum butuh akses dashboard). Akun login dibuat lewat provisioning.
func (ctrl *TeamMemberController) CreateTeamMember(c *fiber.Ctx) error {
	var req dto.CreateTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.TeamMemberEmail))

	var count int64
	if err := ctrl.DB.Model(&model.TeamMemberModel{}).
		Where("team_member_email = ?", email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar sebagai member")
	}

	m := model.TeamMemberModel{
		TeamMemberFullName:   strings.TrimSpace(req.TeamMemberFullName),
		TeamMemberEmail:      email,
		TeamMemberPhone:      req.TeamMemberPhone,
		TeamMemberPosition:   req.TeamMemberPosition,
		TeamMemberDepartment: req.TeamMemberDepartment,
		TeamMemberSkills:     pq.StringArray(req.TeamMemberSkills),
		TeamMemberIsAdmin:    req.TeamMemberIsAdmin,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat member")
	}

	return helper.JsonCreated(c, "Member berhasil dibuat", dto.ToTeamMemberDTO(m))
}

/* ===== PROVISIONING (user + member sekaligus) ===== */

// provisionOne membuat akun user + record member dalam satu transaksi,
// lalu mengirim kredensial lewat email. Dipakai endpoint bulk & import Excel.
func (ctrl *TeamMemberController) provisionOne(req dto.CreateTeamMemberRequest) (*model.TeamMemberModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.TeamMemberEmail))
	fullName := strings.TrimSpace(req.TeamMemberFullName)

	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("gagal memeriksa email: %w", err)
	}
	if count > 0 {
		return nil, errors.New("email sudah terdaftar sebagai user")
	}
	if err := ctrl.DB.Model(&model.TeamMemberModel{}).
		Where("team_member_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("gagal memeriksa email: %w", err)
	}
	if count > 0 {
		return nil, errors.New("email sudah terdaftar sebagai member")
	}

	plainPassword, err := service.GeneratePassword()
	if err != nil {
		return nil, fmt.Errorf("gagal membuat password: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("gagal hash password: %w", err)
	}

	role := constants.RoleStaff
	if req.TeamMemberIsAdmin {
		role = constants.RoleAdmin
	}

	var member model.TeamMemberModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserName: fullName,
			Email:    email,
			Password: string(hashed),
			Role:     role,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("gagal membuat user: %w", err)
		}

		member = model.TeamMemberModel{
			TeamMemberUserID:     &user.ID,
			TeamMemberFullName:   fullName,
			TeamMemberEmail:      email,
			TeamMemberPhone:      req.TeamMemberPhone,
			TeamMemberPosition:   req.TeamMemberPosition,
			TeamMemberDepartment: req.TeamMemberDepartment,
			TeamMemberSkills:     pq.StringArray(req.TeamMemberSkills),
			TeamMemberIsAdmin:    req.TeamMemberIsAdmin,
			TeamMemberIsApproved: true,
		}
		if err := tx.Create(&member).Error; err != nil {
			return fmt.Errorf("gagal membuat member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	mailer.SendAsync(mailer.Message{
		ToName:  fullName,
		ToEmail: email,
		Subject: "Akun dashboard StaffHub kamu sudah aktif",
		Text: fmt.Sprintf(
			"Halo %s,\n\nAkun dashboard kamu sudah dibuat.\nEmail: %s\nPassword: %s\n\nSegera login dan ganti password ya.",
			fullName, email, plainPassword,
		),
	})

	return &member, nil
}

// BulkProvision memproses daftar member berurutan; satu baris gagal
// tidak menghentikan baris lain.
func (ctrl *TeamMemberController) BulkProvision(c *fiber.Ctx) error {
	var req dto.BulkProvisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp := ctrl.provisionRows(req.Members)
	return helper.JsonOK(c, "Provisioning selesai", resp)
}

func (ctrl *TeamMemberController) provisionRows(rows []dto.CreateTeamMemberRequest) dto.BulkProvisionResponse {
	resp := dto.BulkProvisionResponse{
		Total:   len(rows),
		Results: make([]dto.BulkProvisionRowResult, 0, len(rows)),
	}
	for i, row := range rows {
		res := dto.BulkProvisionRowResult{
			Row:   i + 1,
			Email: strings.ToLower(strings.TrimSpace(row.TeamMemberEmail)),
		}
		member, err := ctrl.provisionOne(row)
		if err != nil {
			res.Error = err.Error()
			resp.Failed++
		} else {
			res.TeamMemberID = &member.TeamMemberID
			resp.Created++
		}
		resp.Results = append(resp.Results, res)
	}
	return resp
}

/* ===== READ ===== */

func (ctrl *TeamMemberController) GetTeamMemberByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	var m model.TeamMemberModel
	if err := ctrl.DB.First(&m, "team_member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil member")
	}

	return helper.JsonOK(c, "ok", dto.ToTeamMemberDTO(m))
}

func (ctrl *TeamMemberController) ListTeamMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TeamMemberModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("team_member_full_name ILIKE ? OR team_member_email ILIKE ?", like, like)
	}
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("team_member_department = ?", dept)
	}
	if approved := strings.TrimSpace(c.Query("approved")); approved != "" {
		q = q.Where("team_member_is_approved = ?", approved == "true")
	}
	if skill := strings.TrimSpace(c.Query("skill")); skill != "" {
		q = q.Where("? = ANY(team_member_skills)", skill)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung member")
	}

	var members []model.TeamMemberModel
	if err := q.
		Order("team_member_full_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar member")
	}

	return helper.JsonList(c, "ok", dto.ToTeamMemberDTOs(members), helper.BuildPagination(total, paging, len(members)))
}

/* ===== UPDATE ===== */

func (ctrl *TeamMemberController) UpdateTeamMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	var req dto.UpdateTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.TeamMemberModel
	if err := ctrl.DB.First(&m, "team_member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil member")
	}

	if req.TeamMemberFullName != nil {
		m.TeamMemberFullName = strings.TrimSpace(*req.TeamMemberFullName)
	}
	if req.TeamMemberPhone != nil {
		m.TeamMemberPhone = req.TeamMemberPhone
	}
	if req.TeamMemberPosition != nil {
		m.TeamMemberPosition = req.TeamMemberPosition
	}
	if req.TeamMemberDepartment != nil {
		m.TeamMemberDepartment = req.TeamMemberDepartment
	}
	if req.TeamMemberSkills != nil {
		m.TeamMemberSkills = pq.StringArray(req.TeamMemberSkills)
	}
	if req.TeamMemberIsAdmin != nil {
		m.TeamMemberIsAdmin = *req.TeamMemberIsAdmin
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui member")
	}

	return helper.JsonUpdated(c, "Member berhasil diperbarui", dto.ToTeamMemberDTO(m))
}

// setApproval mengubah status approval + menyinkronkan is_active akun login.
func (ctrl *TeamMemberController) setApproval(c *fiber.Ctx, approved bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	var m model.TeamMemberModel
	if err := ctrl.DB.First(&m, "team_member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil member")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&m).
			Update("team_member_is_approved", approved).Error; err != nil {
			return err
		}
		if m.TeamMemberUserID != nil {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", *m.TeamMemberUserID).
				Update("is_active", approved).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status approval")
	}

	m.TeamMemberIsApproved = approved
	msg := "Member disetujui"
	if !approved {
		msg = "Akses member dicabut"
	}
	return helper.JsonUpdated(c, msg, dto.ToTeamMemberDTO(m))
}

func (ctrl *TeamMemberController) ApproveTeamMember(c *fiber.Ctx) error {
	return ctrl.setApproval(c, true)
}

func (ctrl *TeamMemberController) RevokeTeamMember(c *fiber.Ctx) error {
	return ctrl.setApproval(c, false)
}

/* ===== DELETE ===== */

func (ctrl *TeamMemberController) DeleteTeamMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	res := ctrl.DB.Delete(&model.TeamMemberModel{}, "team_member_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Member berhasil dihapus", fiber.Map{"team_member_id": id})
}
