package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffhub_backend/internals/features/work/tasks/dto"
	"staffhub_backend/internals/features/work/tasks/model"
	helper "staffhub_backend/internals/helpers"
)

/* ===== SUBTASKS ===== */

func (ctrl *TaskController) loadTask(id uuid.UUID) (*model.TaskModel, error) {
	var task model.TaskModel
	if err := ctrl.DB.First(&task, "task_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (ctrl *TaskController) CreateSubtask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID task tidak valid")
	}

	var req dto.CreateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if _, err := ctrl.loadTask(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil task")
	}

	sub := model.SubtaskModel{
		SubtaskTaskID: taskID,
		SubtaskTitle:  strings.TrimSpace(req.SubtaskTitle),
		SubtaskOrder:  req.SubtaskOrder,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		return writeHistory(tx, taskID, actorID, "subtask_added", map[string]any{
			"subtask_title": sub.SubtaskTitle,
		})
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat subtask")
	}

	return helper.JsonCreated(c, "Subtask berhasil dibuat", dto.ToSubtaskDTO(sub))
}

func (ctrl *TaskController) UpdateSubtask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID task tidak valid")
	}
	subID, err := uuid.Parse(c.Params("subtaskId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID subtask tidak valid")
	}

	var req dto.UpdateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var sub model.SubtaskModel
	if err := ctrl.DB.
		First(&sub, "subtask_id = ? AND subtask_task_id = ?", subID, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subtask tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subtask")
	}

	changed := map[string]any{}
	if req.SubtaskTitle != nil {
		sub.SubtaskTitle = strings.TrimSpace(*req.SubtaskTitle)
		changed["subtask_title"] = sub.SubtaskTitle
	}
	if req.SubtaskDone != nil {
		sub.SubtaskDone = *req.SubtaskDone
		changed["subtask_done"] = sub.SubtaskDone
	}
	if req.SubtaskOrder != nil {
		sub.SubtaskOrder = *req.SubtaskOrder
		changed["subtask_order"] = sub.SubtaskOrder
	}

	if len(changed) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.ToSubtaskDTO(sub))
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}
		return writeHistory(tx, taskID, actorID, "subtask_updated", changed)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui subtask")
	}

	return helper.JsonUpdated(c, "Subtask berhasil diperbarui", dto.ToSubtaskDTO(sub))
}

func (ctrl *TaskController) DeleteSubtask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID task tidak valid")
	}
	subID, err := uuid.Parse(c.Params("subtaskId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID subtask tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.SubtaskModel{}, "subtask_id = ? AND subtask_task_id = ?", subID, taskID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return writeHistory(tx, taskID, actorID, "subtask_deleted", map[string]any{
			"subtask_id": subID.String(),
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subtask tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subtask")
	}

	return helper.JsonDeleted(c, "Subtask berhasil dihapus", fiber.Map{"subtask_id": subID})
}
