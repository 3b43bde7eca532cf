package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staffhub_backend/internals/constants"
	fileController "staffhub_backend/internals/features/storage/files/controller"
	authMiddleware "staffhub_backend/internals/middlewares/auth"
)

func StoredFileRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := fileController.NewStoredFileController(db)

	files := router.Group("/files")
	files.Post("/", ctrl.UploadFile)
	files.Get("/", ctrl.ListFiles)
	files.Get("/folders", ctrl.ListFolders)
}

func StoredFileAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := fileController.NewStoredFileController(db)

	files := router.Group("/files",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("menghapus file"),
			constants.AdminAndAbove,
		),
	)
	files.Delete("/:id", ctrl.DeleteFile)
}
