package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationController "staffhub_backend/internals/features/talent/applications/controller"
)

func ApplicationRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := applicationController.NewApplicationController(db)

	applications := router.Group("/applications")
	applications.Post("/", ctrl.CreateApplication)
	applications.Get("/", ctrl.ListApplications)
	applications.Get("/pipeline", ctrl.GetPipelineCounts)
	applications.Get("/:id", ctrl.GetApplicationByID)
	applications.Put("/:id", ctrl.UpdateApplication)
	applications.Delete("/:id", ctrl.DeleteApplication)
}
