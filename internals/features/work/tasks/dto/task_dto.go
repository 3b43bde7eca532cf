package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"staffhub_backend/internals/features/work/tasks/model"
)

/* ===== REQUEST ===== */

type CreateTaskRequest struct {
	TaskTitle            string     `json:"task_title" validate:"required,min=3,max=200"`
	TaskDescription      *string    `json:"task_description"`
	TaskStatus           string     `json:"task_status" validate:"omitempty,oneof=todo in_progress review done"`
	TaskPriority         string     `json:"task_priority" validate:"omitempty,oneof=low medium high urgent"`
	TaskAssigneeMemberID *uuid.UUID `json:"task_assignee_member_id"`
	TaskDueDate          *string    `json:"task_due_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	TaskTitle            *string    `json:"task_title" validate:"omitempty,min=3,max=200"`
	TaskDescription      *string    `json:"task_description"`
	TaskStatus           *string    `json:"task_status" validate:"omitempty,oneof=todo in_progress review done"`
	TaskPriority         *string    `json:"task_priority" validate:"omitempty,oneof=low medium high urgent"`
	TaskAssigneeMemberID *uuid.UUID `json:"task_assignee_member_id"`
	TaskDueDate          *string    `json:"task_due_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateSubtaskRequest struct {
	SubtaskTitle string `json:"subtask_title" validate:"required,min=1,max=200"`
	SubtaskOrder int    `json:"subtask_order" validate:"omitempty,min=0"`
}

type UpdateSubtaskRequest struct {
	SubtaskTitle *string `json:"subtask_title" validate:"omitempty,min=1,max=200"`
	SubtaskDone  *bool   `json:"subtask_done"`
	SubtaskOrder *int    `json:"subtask_order" validate:"omitempty,min=0"`
}

/* ===== RESPONSE ===== */

type SubtaskDTO struct {
	SubtaskID    uuid.UUID `json:"subtask_id"`
	SubtaskTitle string    `json:"subtask_title"`
	SubtaskDone  bool      `json:"subtask_done"`
	SubtaskOrder int       `json:"subtask_order"`
}

type TaskDTO struct {
	TaskID               uuid.UUID    `json:"task_id"`
	TaskTitle            string       `json:"task_title"`
	TaskDescription      *string      `json:"task_description,omitempty"`
	TaskStatus           string       `json:"task_status"`
	TaskPriority         string       `json:"task_priority"`
	TaskAssigneeMemberID *uuid.UUID   `json:"task_assignee_member_id,omitempty"`
	TaskCreatedByUserID  uuid.UUID    `json:"task_created_by_user_id"`
	TaskDueDate          *string      `json:"task_due_date,omitempty"`
	TaskSubtasks         []SubtaskDTO `json:"task_subtasks,omitempty"`
	TaskCreatedAt        time.Time    `json:"task_created_at"`
	TaskUpdatedAt        time.Time    `json:"task_updated_at"`
}

type TaskHistoryDTO struct {
	TaskHistoryID          uuid.UUID      `json:"task_history_id"`
	TaskHistoryAction      string         `json:"task_history_action"`
	TaskHistoryActorUserID uuid.UUID      `json:"task_history_actor_user_id"`
	TaskHistorySnapshot    datatypes.JSON `json:"task_history_snapshot,omitempty"`
	TaskHistoryCreatedAt   time.Time      `json:"task_history_created_at"`
}

func ToSubtaskDTO(s model.SubtaskModel) SubtaskDTO {
	return SubtaskDTO{
		SubtaskID:    s.SubtaskID,
		SubtaskTitle: s.SubtaskTitle,
		SubtaskDone:  s.SubtaskDone,
		SubtaskOrder: s.SubtaskOrder,
	}
}

func ToTaskDTO(t model.TaskModel, subtasks []model.SubtaskModel) TaskDTO {
	var due *string
	if t.TaskDueDate != nil {
		v := t.TaskDueDate.Format("2006-01-02")
		due = &v
	}
	dtoSubs := make([]SubtaskDTO, 0, len(subtasks))
	for _, s := range subtasks {
		dtoSubs = append(dtoSubs, ToSubtaskDTO(s))
	}
	return TaskDTO{
		TaskID:               t.TaskID,
		TaskTitle:            t.TaskTitle,
		TaskDescription:      t.TaskDescription,
		TaskStatus:           t.TaskStatus,
		TaskPriority:         t.TaskPriority,
		TaskAssigneeMemberID: t.TaskAssigneeMemberID,
		TaskCreatedByUserID:  t.TaskCreatedByUserID,
		TaskDueDate:          due,
		TaskSubtasks:         dtoSubs,
		TaskCreatedAt:        t.TaskCreatedAt,
		TaskUpdatedAt:        t.TaskUpdatedAt,
	}
}

func ToTaskHistoryDTO(h model.TaskHistoryModel) TaskHistoryDTO {
	return TaskHistoryDTO{
		TaskHistoryID:          h.TaskHistoryID,
		TaskHistoryAction:      h.TaskHistoryAction,
		TaskHistoryActorUserID: h.TaskHistoryActorUserID,
		TaskHistorySnapshot:    h.TaskHistorySnapshot,
		TaskHistoryCreatedAt:   h.TaskHistoryCreatedAt,
	}
}
