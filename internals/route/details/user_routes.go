package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatRoute "staffhub_backend/internals/features/chat/messages/route"
	chatHub "staffhub_backend/internals/features/chat/messages/service"
	fileRoute "staffhub_backend/internals/features/storage/files/route"
	applicationRoute "staffhub_backend/internals/features/talent/applications/route"
	consultantRoute "staffhub_backend/internals/features/talent/consultants/route"
	interviewRoute "staffhub_backend/internals/features/talent/interviews/route"
	memberRoute "staffhub_backend/internals/features/team/members/route"
	userRoute "staffhub_backend/internals/features/users/user/route"
	attendanceRoute "staffhub_backend/internals/features/work/attendance/route"
	taskRoute "staffhub_backend/internals/features/work/tasks/route"
)

// UserRoutes: fitur untuk semua member login di bawah /api/u.
func UserRoutes(router fiber.Router, db *gorm.DB, hub *chatHub.Hub) {
	userRoute.UserRoutes(router, db)
	memberRoute.TeamMemberUserRoutes(router, db)
	attendanceRoute.AttendanceUserRoutes(router, db)
	taskRoute.TaskRoutes(router, db)
	consultantRoute.ConsultantUserRoutes(router, db)
	applicationRoute.ApplicationRoutes(router, db)
	interviewRoute.InterviewRoutes(router, db)
	fileRoute.StoredFileRoutes(router, db)
	chatRoute.ChatRoutes(router, db, hub)
}
