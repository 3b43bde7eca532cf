package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   TASKS
   Status: todo | in_progress | review | done
   Priority: low | medium | high | urgent
======================================================= */

type TaskModel struct {
	TaskID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:task_id" json:"task_id"`

	TaskTitle       string  `gorm:"size:200;not null;column:task_title" json:"task_title"`
	TaskDescription *string `gorm:"type:text;column:task_description" json:"task_description,omitempty"`

	TaskStatus   string `gorm:"type:varchar(20);not null;default:'todo';column:task_status" json:"task_status"`
	TaskPriority string `gorm:"type:varchar(20);not null;default:'medium';column:task_priority" json:"task_priority"`

	TaskAssigneeMemberID *uuid.UUID `gorm:"type:uuid;index;column:task_assignee_member_id" json:"task_assignee_member_id,omitempty"`
	TaskCreatedByUserID  uuid.UUID  `gorm:"type:uuid;not null;column:task_created_by_user_id" json:"task_created_by_user_id"`

	TaskDueDate *time.Time `gorm:"type:date;column:task_due_date" json:"task_due_date,omitempty"`

	TaskCreatedAt time.Time      `gorm:"column:task_created_at;autoCreateTime" json:"task_created_at"`
	TaskUpdatedAt time.Time      `gorm:"column:task_updated_at;autoUpdateTime" json:"task_updated_at"`
	TaskDeletedAt gorm.DeletedAt `gorm:"column:task_deleted_at;index" json:"task_deleted_at,omitempty"`
}

func (TaskModel) TableName() string { return "tasks" }

type SubtaskModel struct {
	SubtaskID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subtask_id" json:"subtask_id"`
	SubtaskTaskID uuid.UUID `gorm:"type:uuid;not null;index;column:subtask_task_id" json:"subtask_task_id"`

	SubtaskTitle string `gorm:"size:200;not null;column:subtask_title" json:"subtask_title"`
	SubtaskDone  bool   `gorm:"not null;default:false;column:subtask_done" json:"subtask_done"`
	SubtaskOrder int    `gorm:"not null;default:0;column:subtask_order" json:"subtask_order"`

	SubtaskCreatedAt time.Time `gorm:"column:subtask_created_at;autoCreateTime" json:"subtask_created_at"`
	SubtaskUpdatedAt time.Time `gorm:"column:subtask_updated_at;autoUpdateTime" json:"subtask_updated_at"`
}

func (SubtaskModel) TableName() string { return "subtasks" }

// TaskHistoryModel: append-only. Snapshot menyimpan field yang berubah.
type TaskHistoryModel struct {
	TaskHistoryID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:task_history_id" json:"task_history_id"`
	TaskHistoryTaskID uuid.UUID `gorm:"type:uuid;not null;index;column:task_history_task_id" json:"task_history_task_id"`

	// created | updated | status_changed | assigned | subtask_added |
	// subtask_updated | subtask_deleted | deleted
	TaskHistoryAction string `gorm:"type:varchar(30);not null;column:task_history_action" json:"task_history_action"`

	TaskHistoryActorUserID uuid.UUID      `gorm:"type:uuid;not null;column:task_history_actor_user_id" json:"task_history_actor_user_id"`
	TaskHistorySnapshot    datatypes.JSON `gorm:"type:jsonb;column:task_history_snapshot" json:"task_history_snapshot,omitempty"`

	TaskHistoryCreatedAt time.Time `gorm:"column:task_history_created_at;autoCreateTime" json:"task_history_created_at"`
}

func (TaskHistoryModel) TableName() string { return "task_history" }
