package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatHub "staffhub_backend/internals/features/chat/messages/service"
	authRoute "staffhub_backend/internals/features/users/auth/route"
	authMiddleware "staffhub_backend/internals/middlewares/auth"
	routeDetails "staffhub_backend/internals/route/details"
)

// SetupRoutes menyusun seluruh route aplikasi:
//
//	/api/auth — login/refresh/logout/register
//	/api/u    — wajib login
//	/api/a    — wajib login + role admin/owner (dicek per-group di details)
func SetupRoutes(app *fiber.App, db *gorm.DB, hub *chatHub.Hub) {
	BaseRoutes(app, db)
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api")

	authed := api.Group("/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(authed, db, hub)

	admin := api.Group("/a", authMiddleware.AuthMiddleware(db))
	routeDetails.AdminRoutes(admin, db)
}
