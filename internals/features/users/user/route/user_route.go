package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staffhub_backend/internals/constants"
	userController "staffhub_backend/internals/features/users/user/controller"
	authMiddleware "staffhub_backend/internals/middlewares/auth"
)

func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := router.Group("/users")
	users.Get("/me", ctrl.Me)
	users.Put("/me", ctrl.UpdateMe)
}

func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := router.Group("/users",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola user"),
			constants.AdminAndAbove,
		),
	)
	users.Get("/", ctrl.ListUsers)
	users.Patch("/:id/active", ctrl.SetActive)
}
