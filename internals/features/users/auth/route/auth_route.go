package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staffhub_backend/internals/constants"
	authController "staffhub_backend/internals/features/users/auth/controller"
	"staffhub_backend/internals/middlewares"
	authMiddleware "staffhub_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)

	// butuh token valid
	protected := auth.Group("/", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)

	// admin only
	protected.Post("/register",
		middlewares.RegisterRateLimiter(),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mendaftarkan user"),
			constants.AdminAndAbove,
		),
		ctrl.Register,
	)
}
