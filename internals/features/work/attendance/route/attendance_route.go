package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staffhub_backend/internals/constants"
	attendanceController "staffhub_backend/internals/features/work/attendance/controller"
	authMiddleware "staffhub_backend/internals/middlewares/auth"
)

// 👤 Staff: absen diri sendiri + lihat record sendiri
func AttendanceUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)
	report := attendanceController.NewAttendanceReportController(db)

	att := router.Group("/attendance")
	att.Post("/check-in", ctrl.CheckIn)   // ➕ Check-in (sesi baru)
	att.Post("/check-out", ctrl.CheckOut) // ✅ Check-out sesi berjalan
	att.Get("/today", ctrl.GetToday)      // 📄 Absensi hari ini
	att.Get("/summary", report.Summary)   // 📊 Rekap per member
	att.Get("/top-performer", report.TopPerformer)
	att.Get("/", ctrl.ListAttendance) // 📄 List per range
	att.Get("/:id", ctrl.GetAttendanceByID)
}

// 🔐 Admin: entri manual + export
func AttendanceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)
	report := attendanceController.NewAttendanceReportController(db)

	att := router.Group("/attendance",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola absensi"),
			constants.AdminAndAbove,
		),
	)
	att.Post("/", ctrl.CreateAttendance)      // ➕ Entri manual
	att.Put("/:id", ctrl.UpdateAttendance)    // ✏️ Edit manual
	att.Delete("/:id", ctrl.DeleteAttendance) // 🗑️ Hapus (manual saja)
	att.Get("/export", report.ExportExcel)    // 📥 Export .xlsx
}
