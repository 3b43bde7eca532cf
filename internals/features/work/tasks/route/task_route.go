package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskController "staffhub_backend/internals/features/work/tasks/controller"
)

// TaskRoutes: seluruh member yang login boleh mengelola task.
func TaskRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := taskController.NewTaskController(db)

	tasks := router.Group("/tasks")
	tasks.Post("/", ctrl.CreateTask)
	tasks.Get("/", ctrl.ListTasks)
	tasks.Get("/:id", ctrl.GetTaskByID)
	tasks.Get("/:id/history", ctrl.GetTaskHistory)
	tasks.Put("/:id", ctrl.UpdateTask)
	tasks.Delete("/:id", ctrl.DeleteTask)

	tasks.Post("/:id/subtasks", ctrl.CreateSubtask)
	tasks.Put("/:id/subtasks/:subtaskId", ctrl.UpdateSubtask)
	tasks.Delete("/:id/subtasks/:subtaskId", ctrl.DeleteSubtask)
}
