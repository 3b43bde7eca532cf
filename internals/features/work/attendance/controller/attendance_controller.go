// file: internals/features/work/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffhub_backend/internals/configs"
	"staffhub_backend/internals/constants"
	memberModel "staffhub_backend/internals/features/team/members/model"
	"staffhub_backend/internals/features/work/attendance/dto"
	"staffhub_backend/internals/features/work/attendance/model"
	"staffhub_backend/internals/features/work/attendance/service"
	helper "staffhub_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

/* ===================== helpers ===================== */

// agencyNow: waktu sekarang di timezone agency (bukan UTC server)
func agencyNow() time.Time {
	loc, err := time.LoadLocation(configs.AgencyTimezone)
	if err != nil {
		return time.Now()
	}
	return time.Now().In(loc)
}

func todayDate() time.Time {
	now := agencyNow()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveMemberID: admin boleh absen atas nama member lain via payload;
// selain itu member di-resolve dari user_id token.
func (ctrl *AttendanceController) resolveMemberID(c *fiber.Ctx, payloadMemberID *string) (uuid.UUID, error) {
	if payloadMemberID != nil && strings.TrimSpace(*payloadMemberID) != "" {
		role := helper.GetUserRoleFromLocals(c)
		if role != constants.RoleAdmin && role != constants.RoleOwner {
			return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Hanya admin yang boleh absen atas nama member lain")
		}
		id, err := uuid.Parse(*payloadMemberID)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "member_id tidak valid")
		}
		return id, nil
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return uuid.Nil, err
	}

	var member memberModel.TeamMemberModel
	if err := ctrl.DB.
		Where("team_member_user_id = ?", userID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Akun Anda belum terhubung ke anggota tim")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !member.TeamMemberIsApproved {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Anggota tim belum di-approve admin")
	}
	return member.TeamMemberID, nil
}

func clockOrNow(override *string) string {
	if override != nil && strings.TrimSpace(*override) != "" {
		return strings.TrimSpace(*override)
	}
	return agencyNow().Format("15:04:05")
}

// loadSessions: decode notes; kalau kosong tapi record punya field legacy,
// seed satu sesi dari span lama supaya tulisan baru selalu format JSON.
func loadSessions(rec *model.AttendanceRecordModel) []service.Session {
	sessions := service.DecodeSessions(rec.AttendanceRecordNotes)
	if len(sessions) > 0 {
		return sessions
	}
	if rec.AttendanceRecordCheckInTime == nil || *rec.AttendanceRecordCheckInTime == "" {
		return nil
	}
	seed := service.Session{In: *rec.AttendanceRecordCheckInTime}
	if rec.AttendanceRecordCheckOutTime != nil {
		seed.Out = *rec.AttendanceRecordCheckOutTime
	}
	if jobs := service.ExtractLegacyJobsCount(rec.AttendanceRecordNotes); jobs > 0 {
		seed.Jobs = jobs
	}
	return []service.Session{seed}
}

// persistSessions: tulis session log + back-fill field legacy
func persistSessions(rec *model.AttendanceRecordModel, sessions []service.Session) {
	rec.AttendanceRecordNotes = service.EncodeSessions(sessions)

	if in := service.EarliestIn(sessions); in != "" {
		rec.AttendanceRecordCheckInTime = &in
	}
	if out := service.LatestOut(sessions); out != "" {
		rec.AttendanceRecordCheckOutTime = &out
	} else {
		rec.AttendanceRecordCheckOutTime = nil // sesi masih berjalan
	}
}

// buildManualSpan menyusun satu span dari edit manual admin, digabung
// dengan nilai record yang sudah ada. Edit tanpa check-in (baik di payload
// maupun di record) ditolak supaya jobs/check-out tidak hilang diam-diam.
func buildManualSpan(existingIn, existingOut, reqIn, reqOut *string, reqJobs *int, fallbackJobs int) (service.Session, error) {
	s := service.Session{}
	if reqIn != nil {
		s.In = strings.TrimSpace(*reqIn)
	} else if existingIn != nil {
		s.In = *existingIn
	}
	if s.In == "" {
		return service.Session{}, errors.New("record ini belum punya check-in; isi check_in dulu")
	}
	if reqOut != nil {
		s.Out = strings.TrimSpace(*reqOut)
	} else if existingOut != nil {
		s.Out = *existingOut
	}
	if reqJobs != nil {
		s.Jobs = *reqJobs
	} else {
		s.Jobs = fallbackJobs
	}
	return s, nil
}

/* ===================== CHECK-IN ===================== */
// POST /attendance/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	memberID, err := ctrl.resolveMemberID(c, req.MemberID)
	if err != nil {
		return err
	}

	date := todayDate()
	at := clockOrNow(req.Time)

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var rec model.AttendanceRecordModel
	err = tx.Where("attendance_record_member_id = ? AND attendance_record_date = ?", memberID, date).
		First(&rec).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// check-in pertama hari ini → buat record baru
		sessions, serr := service.AppendCheckIn(nil, at)
		if serr != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusBadRequest, serr.Error())
		}
		rec = model.AttendanceRecordModel{
			AttendanceRecordMemberID: memberID,
			AttendanceRecordDate:     date,
			AttendanceRecordStatus:   "present",
		}
		if req.Status != nil {
			rec.AttendanceRecordStatus = *req.Status
		}
		persistSessions(&rec, sessions)
		if err := tx.Create(&rec).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-in")
		}

	case err != nil:
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())

	default:
		// record sudah ada → append sesi baru (ditolak kalau masih ada sesi berjalan)
		sessions := loadSessions(&rec)
		sessions, serr := service.AppendCheckIn(sessions, at)
		if serr != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusBadRequest, serr.Error())
		}
		if req.Status != nil {
			rec.AttendanceRecordStatus = *req.Status
		}
		persistSessions(&rec, sessions)
		if err := tx.Save(&rec).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-in")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Check-in berhasil", dto.ToAttendanceRecordDTO(rec))
}

/* ===================== CHECK-OUT ===================== */
// POST /attendance/check-out
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	memberID, err := ctrl.resolveMemberID(c, req.MemberID)
	if err != nil {
		return err
	}

	date := todayDate()
	at := clockOrNow(req.Time)

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var rec model.AttendanceRecordModel
	if err := tx.Where("attendance_record_member_id = ? AND attendance_record_date = ?", memberID, date).
		First(&rec).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Belum ada check-in hari ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	sessions := loadSessions(&rec)
	sessions, serr := service.CloseOpenSession(sessions, at, req.Jobs)
	if serr != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusBadRequest, serr.Error())
	}
	persistSessions(&rec, sessions)

	if err := tx.Save(&rec).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-out")
	}
	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Check-out berhasil", dto.ToAttendanceRecordDTO(rec))
}

/* ===================== CREATE (manual, admin) ===================== */
// POST /attendance
func (ctrl *AttendanceController) CreateAttendance(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	memberID, _ := uuid.Parse(req.MemberID)
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	rec := model.AttendanceRecordModel{
		AttendanceRecordMemberID: memberID,
		AttendanceRecordDate:     date,
		AttendanceRecordStatus:   req.Status,
	}

	// entri manual langsung ditulis sebagai session log (format baru)
	if req.CheckIn != nil && *req.CheckIn != "" {
		s := service.Session{In: *req.CheckIn, Jobs: req.Jobs}
		if req.CheckOut != nil {
			s.Out = *req.CheckOut
		}
		persistSessions(&rec, []service.Session{s})
	} else {
		rec.AttendanceRecordNotes = service.EncodeSessions(nil)
	}

	if err := ctrl.DB.Create(&rec).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return fiber.NewError(fiber.StatusConflict, "Record absensi untuk member & tanggal ini sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat record absensi")
	}
	return helper.JsonCreated(c, "Record absensi dibuat", dto.ToAttendanceRecordDTO(rec))
}

/* ===================== UPDATE (manual, admin) ===================== */
// PUT /attendance/:id
func (ctrl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var rec model.AttendanceRecordModel
	if err := ctrl.DB.First(&rec, "attendance_record_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record absensi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Status != nil {
		rec.AttendanceRecordStatus = *req.Status
	}
	if req.CheckIn != nil || req.CheckOut != nil || req.Jobs != nil {
		fallbackJobs := service.TotalJobsForDay(loadSessions(&rec), rec.AttendanceRecordNotes)
		s, err := buildManualSpan(
			rec.AttendanceRecordCheckInTime, rec.AttendanceRecordCheckOutTime,
			req.CheckIn, req.CheckOut, req.Jobs, fallbackJobs,
		)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		persistSessions(&rec, []service.Session{s})
	}

	if err := ctrl.DB.Save(&rec).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update record absensi")
	}
	return helper.JsonUpdated(c, "Record absensi diupdate", dto.ToAttendanceRecordDTO(rec))
}

/* ===================== DELETE (manual, admin) ===================== */
// DELETE /attendance/:id
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Delete(&model.AttendanceRecordModel{}, "attendance_record_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus record absensi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Record absensi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Record absensi dihapus", fiber.Map{"attendance_record_id": id})
}

/* ===================== GET ===================== */
// GET /attendance/:id
func (ctrl *AttendanceController) GetAttendanceByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var rec model.AttendanceRecordModel
	if err := ctrl.DB.First(&rec, "attendance_record_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record absensi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToAttendanceRecordDTO(rec))
}

// GET /attendance?member_id=&from=&to=&page=&per_page=
func (ctrl *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.AttendanceRecordModel{})
	if memberID := strings.TrimSpace(c.Query("member_id")); memberID != "" {
		id, err := uuid.Parse(memberID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "member_id tidak valid")
		}
		q = q.Where("attendance_record_member_id = ?", id)
	}
	from, to, err := resolveRange(c)
	if err != nil {
		return err
	}
	q = q.Where("attendance_record_date BETWEEN ? AND ?", from, to)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var records []model.AttendanceRecordModel
	if err := q.
		Order("attendance_record_date ASC, attendance_record_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	data := dto.ToAttendanceRecordDTOs(records)
	return helper.JsonList(c, "ok", data, helper.BuildPagination(total, paging, len(data)))
}

// GET /attendance/today → record hari ini milik member yang login
func (ctrl *AttendanceController) GetToday(c *fiber.Ctx) error {
	memberID, err := ctrl.resolveMemberID(c, nil)
	if err != nil {
		return err
	}
	var rec model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_record_member_id = ? AND attendance_record_date = ?", memberID, todayDate()).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "Belum ada absensi hari ini", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToAttendanceRecordDTO(rec))
}

/* ===================== range resolver ===================== */

// resolveRange membaca ?period=day|week|month atau ?from=&to= (YYYY-MM-DD)
func resolveRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := todayDate()
	switch strings.ToLower(strings.TrimSpace(c.Query("period"))) {
	case "day":
		return now, now, nil
	case "week":
		// mulai Senin
		offset := (int(now.Weekday()) + 6) % 7
		start := now.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	}

	fromStr := strings.TrimSpace(c.Query("from"))
	toStr := strings.TrimSpace(c.Query("to"))
	if fromStr == "" && toStr == "" {
		// default: bulan berjalan
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	}
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Format from tidak valid (YYYY-MM-DD)")
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Format to tidak valid (YYYY-MM-DD)")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Range tanggal terbalik")
	}
	return from, to, nil
}
