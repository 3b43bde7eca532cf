package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	interviewController "staffhub_backend/internals/features/talent/interviews/controller"
)

func InterviewRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := interviewController.NewInterviewController(db)

	interviews := router.Group("/interviews")
	interviews.Post("/", ctrl.CreateInterview)
	interviews.Get("/", ctrl.ListInterviews)
	interviews.Get("/:id", ctrl.GetInterviewByID)
	interviews.Put("/:id", ctrl.UpdateInterview)
	interviews.Delete("/:id", ctrl.DeleteInterview)
}
