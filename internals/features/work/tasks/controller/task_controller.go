package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"staffhub_backend/internals/features/work/tasks/dto"
	"staffhub_backend/internals/features/work/tasks/model"
	helper "staffhub_backend/internals/helpers"
)

type TaskController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{
		DB:       db,
		Validate: validator.New(),
	}
}

// writeHistory menambah baris history di dalam transaksi mutasi yang sama.
func writeHistory(tx *gorm.DB, taskID, actorID uuid.UUID, action string, snapshot map[string]any) error {
	var raw datatypes.JSON
	if len(snapshot) > 0 {
		b, err := sonic.Marshal(snapshot)
		if err != nil {
			return err
		}
		raw = datatypes.JSON(b)
	}
	return tx.Create(&model.TaskHistoryModel{
		TaskHistoryTaskID:      taskID,
		TaskHistoryAction:      action,
		TaskHistoryActorUserID: actorID,
		TaskHistorySnapshot:    raw,
	}).Error
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

/* ===== CREATE ===== */

func (ctrl *TaskController) CreateTask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	due, err := parseDueDate(req.TaskDueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format due date harus YYYY-MM-DD")
	}

	status := req.TaskStatus
	if status == "" {
		status = "todo"
	}
	priority := req.TaskPriority
	if priority == "" {
		priority = "medium"
	}

	task := model.TaskModel{
		TaskTitle:            strings.TrimSpace(req.TaskTitle),
		TaskDescription:      req.TaskDescription,
		TaskStatus:           status,
		TaskPriority:         priority,
		TaskAssigneeMemberID: req.TaskAssigneeMemberID,
		TaskCreatedByUserID:  actorID,
		TaskDueDate:          due,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		return writeHistory(tx, task.TaskID, actorID, "created", map[string]any{
			"task_title":  task.TaskTitle,
			"task_status": task.TaskStatus,
		})
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat task")
	}

	return helper.JsonCreated(c, "Task berhasil dibuat", dto.ToTaskDTO(task, nil))
}

/* ===== READ ===== */

func (ctrl *TaskController) GetTaskByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID task tidak valid")
	}

	var task model.TaskModel
	if err := ctrl.DB.First(&task, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil task")
	}

	var subtasks []model.SubtaskModel
	if err := ctrl.DB.
		Where("subtask_task_id = ?", id).
		Order("subtask_order ASC, subtask_created_at ASC").
		Find(&subtasks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subtask")
	}

	return helper.JsonOK(c, "ok", dto.ToTaskDTO(task, subtasks))
}

func (ctrl *TaskController) ListTasks(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TaskModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("task_status = ?", status)
	}
	if priority := strings.TrimSpace(c.Query("priority")); priority != "" {
		q = q.Where("task_priority = ?", priority)
	}
	if assignee := strings.TrimSpace(c.Query("assignee_id")); assignee != "" {
		memberID, err := uuid.Parse(assignee)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "assignee_id tidak valid")
		}
		q = q.Where("task_assignee_member_id = ?", memberID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("task_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung task")
	}

	var tasks []model.TaskModel
	if err := q.
		Order("task_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&tasks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar task")
	}

	out := make([]dto.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.ToTaskDTO(t, nil))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPagination(total, paging, len(tasks)))
}

func (ctrl *TaskController) GetTaskHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID task tidak valid")
	}

	var rows []model.TaskHistoryModel
	if err := ctrl.DB.
		Where("task_history_task_id = ?", id).
		Order("task_history_created_at DESC").
		Limit(200).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat task")
	}

	out := make([]dto.TaskHistoryDTO, 0, len(rows))
	for _, h := range rows {
		out = append(out, dto.ToTaskHistoryDTO(h))
	}
	return helper.JsonOK(c, "ok", out)
}

/* ===== UPDATE ===== */

func (ctrl *TaskController) UpdateTask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID task tidak valid")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var task model.TaskModel
	if err := ctrl.DB.First(&task, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil task")
	}

	changed := map[string]any{}
	action := "updated"

	if req.TaskTitle != nil && *req.TaskTitle != task.TaskTitle {
		task.TaskTitle = strings.TrimSpace(*req.TaskTitle)
		changed["task_title"] = task.TaskTitle
	}
	if req.TaskDescription != nil {
		task.TaskDescription = req.TaskDescription
		changed["task_description"] = *req.TaskDescription
	}
	if req.TaskStatus != nil && *req.TaskStatus != task.TaskStatus {
		changed["task_status_from"] = task.TaskStatus
		changed["task_status_to"] = *req.TaskStatus
		task.TaskStatus = *req.TaskStatus
		action = "status_changed"
	}
	if req.TaskPriority != nil && *req.TaskPriority != task.TaskPriority {
		task.TaskPriority = *req.TaskPriority
		changed["task_priority"] = task.TaskPriority
	}
	if req.TaskAssigneeMemberID != nil {
		task.TaskAssigneeMemberID = req.TaskAssigneeMemberID
		changed["task_assignee_member_id"] = req.TaskAssigneeMemberID.String()
		if action == "updated" {
			action = "assigned"
		}
	}
	if req.TaskDueDate != nil {
		due, err := parseDueDate(req.TaskDueDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format due date harus YYYY-MM-DD")
		}
		task.TaskDueDate = due
		changed["task_due_date"] = *req.TaskDueDate
	}

	if len(changed) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.ToTaskDTO(task, nil))
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&task).Error; err != nil {
			return err
		}
		return writeHistory(tx, task.TaskID, actorID, action, changed)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui task")
	}

	return helper.JsonUpdated(c, "Task berhasil diperbarui", dto.ToTaskDTO(task, nil))
}

/* ===== DELETE ===== */

func (ctrl *TaskController) DeleteTask(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID task tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.TaskModel{}, "task_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return writeHistory(tx, id, actorID, "deleted", nil)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus task")
	}

	return helper.JsonDeleted(c, "Task berhasil dihapus", fiber.Map{"task_id": id})
}
