package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staffhub_backend/internals/constants"
	memberController "staffhub_backend/internals/features/team/members/controller"
	authMiddleware "staffhub_backend/internals/middlewares/auth"
)

// TeamMemberUserRoutes: endpoint baca untuk semua member yang sudah login.
func TeamMemberUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewTeamMemberController(db)

	members := router.Group("/team-members")
	members.Get("/", ctrl.ListTeamMembers)
	members.Get("/:id", ctrl.GetTeamMemberByID)
}

// TeamMemberAdminRoutes: CRUD + provisioning, khusus admin/owner.
func TeamMemberAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewTeamMemberController(db)

	members := router.Group("/team-members",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola team member"),
			constants.AdminAndAbove,
		),
	)
	members.Post("/", ctrl.CreateTeamMember)
	members.Post("/provision", ctrl.BulkProvision)
	members.Post("/import", ctrl.ImportTeamMembersExcel)
	members.Put("/:id", ctrl.UpdateTeamMember)
	members.Patch("/:id/approve", ctrl.ApproveTeamMember)
	members.Patch("/:id/revoke", ctrl.RevokeTeamMember)
	members.Delete("/:id", ctrl.DeleteTeamMember)
}
