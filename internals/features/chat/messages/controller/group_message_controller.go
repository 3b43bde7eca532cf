package controller

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"staffhub_backend/internals/features/chat/messages/dto"
	"staffhub_backend/internals/features/chat/messages/model"
	"staffhub_backend/internals/features/chat/messages/service"
	memberModel "staffhub_backend/internals/features/team/members/model"
	helper "staffhub_backend/internals/helpers"
)

type GroupMessageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Hub      *service.Hub
}

func NewGroupMessageController(db *gorm.DB, hub *service.Hub) *GroupMessageController {
	return &GroupMessageController{
		DB:       db,
		Validate: validator.New(),
		Hub:      hub,
	}
}

// senderMember memetakan user login ke record member yang approved.
func (ctrl *GroupMessageController) senderMember(c *fiber.Ctx) (*memberModel.TeamMemberModel, error) {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	var member memberModel.TeamMemberModel
	if err := ctrl.DB.First(&member, "team_member_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Akun kamu belum terhubung ke member tim")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data member")
	}
	if !member.TeamMemberIsApproved {
		return nil, fiber.NewError(fiber.StatusForbidden, "Member belum disetujui admin")
	}
	return &member, nil
}

/* ===== SEND ===== */

func (ctrl *GroupMessageController) SendMessage(c *fiber.Ctx) error {
	member, err := ctrl.senderMember(c)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	msg := model.GroupMessageModel{
		GroupMessageSenderMemberID: member.TeamMemberID,
		GroupMessageBody:           strings.TrimSpace(req.GroupMessageBody),
	}
	if req.GroupMessageAttachment != nil {
		raw, err := sonic.Marshal(req.GroupMessageAttachment)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Attachment tidak valid")
		}
		msg.GroupMessageAttachment = datatypes.JSON(raw)
	}

	if err := ctrl.DB.Create(&msg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	out := dto.ToGroupMessageDTO(msg, member.TeamMemberFullName)
	if payload, err := sonic.Marshal(out); err == nil {
		ctrl.Hub.Broadcast(payload)
	}

	return helper.JsonCreated(c, "Pesan terkirim", out)
}

/* ===== READ ===== */

func (ctrl *GroupMessageController) ListMessages(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.GroupMessageModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var rows []model.GroupMessageModel
	if err := ctrl.DB.
		Order("group_message_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	// nama pengirim diambil sekali per member, bukan per pesan
	names := map[uuid.UUID]string{}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, m := range rows {
		if _, ok := names[m.GroupMessageSenderMemberID]; !ok {
			names[m.GroupMessageSenderMemberID] = ""
			ids = append(ids, m.GroupMessageSenderMemberID)
		}
	}
	if len(ids) > 0 {
		var members []memberModel.TeamMemberModel
		if err := ctrl.DB.
			Select("team_member_id, team_member_full_name").
			Where("team_member_id IN ?", ids).
			Find(&members).Error; err == nil {
			for _, m := range members {
				names[m.TeamMemberID] = m.TeamMemberFullName
			}
		}
	}

	out := make([]dto.GroupMessageDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToGroupMessageDTO(m, names[m.GroupMessageSenderMemberID]))
	}

	return helper.JsonList(c, "ok", out, helper.BuildPagination(total, paging, len(rows)))
}

/* ===== DELETE ===== */

// DeleteMessage hanya boleh menghapus pesan milik sendiri.
func (ctrl *GroupMessageController) DeleteMessage(c *fiber.Ctx) error {
	member, err := ctrl.senderMember(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesan tidak valid")
	}

	var msg model.GroupMessageModel
	if err := ctrl.DB.First(&msg, "group_message_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}
	if msg.GroupMessageSenderMemberID != member.TeamMemberID {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pengirim yang boleh menghapus pesan")
	}

	if err := ctrl.DB.Delete(&msg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pesan")
	}

	return helper.JsonDeleted(c, "Pesan dihapus", fiber.Map{"group_message_id": id})
}
