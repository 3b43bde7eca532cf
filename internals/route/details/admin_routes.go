package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fileRoute "staffhub_backend/internals/features/storage/files/route"
	consultantRoute "staffhub_backend/internals/features/talent/consultants/route"
	memberRoute "staffhub_backend/internals/features/team/members/route"
	userRoute "staffhub_backend/internals/features/users/user/route"
	attendanceRoute "staffhub_backend/internals/features/work/attendance/route"
)

// AdminRoutes: fitur khusus admin/owner di bawah /api/a.
// Setiap sub-route memasang OnlyRolesSlice-nya sendiri.
func AdminRoutes(router fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(router, db)
	memberRoute.TeamMemberAdminRoutes(router, db)
	attendanceRoute.AttendanceAdminRoutes(router, db)
	consultantRoute.ConsultantAdminRoutes(router, db)
	fileRoute.StoredFileAdminRoutes(router, db)
}
