package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staffhub_backend/internals/constants"
	consultantController "staffhub_backend/internals/features/talent/consultants/controller"
	authMiddleware "staffhub_backend/internals/middlewares/auth"
)

func ConsultantUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := consultantController.NewConsultantController(db)

	consultants := router.Group("/consultants")
	consultants.Post("/", ctrl.CreateConsultant)
	consultants.Get("/", ctrl.ListConsultants)
	consultants.Get("/:id", ctrl.GetConsultantByID)
	consultants.Put("/:id", ctrl.UpdateConsultant)
	consultants.Post("/:id/resume", ctrl.UploadResume)
}

func ConsultantAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := consultantController.NewConsultantController(db)

	consultants := router.Group("/consultants",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("menghapus consultant"),
			constants.AdminAndAbove,
		),
	)
	consultants.Delete("/:id", ctrl.DeleteConsultant)
}
