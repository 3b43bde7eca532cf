// file: internals/features/work/attendance/controller/attendance_report_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	memberModel "staffhub_backend/internals/features/team/members/model"
	"staffhub_backend/internals/features/work/attendance/dto"
	"staffhub_backend/internals/features/work/attendance/model"
	"staffhub_backend/internals/features/work/attendance/service"
	helper "staffhub_backend/internals/helpers"
)

type AttendanceReportController struct {
	DB *gorm.DB
}

func NewAttendanceReportController(db *gorm.DB) *AttendanceReportController {
	return &AttendanceReportController{DB: db}
}

// loadRange: record dalam rentang, terurut supaya agregasi deterministik
func (ctrl *AttendanceReportController) loadRange(c *fiber.Ctx) ([]model.AttendanceRecordModel, string, string, error) {
	from, to, err := resolveRange(c)
	if err != nil {
		return nil, "", "", err
	}
	var records []model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_record_date BETWEEN ? AND ?", from, to).
		Order("attendance_record_date ASC, attendance_record_created_at ASC").
		Find(&records).Error; err != nil {
		return nil, "", "", fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return records, from.Format("2006-01-02"), to.Format("2006-01-02"), nil
}

/* ===================== SUMMARY ===================== */
// GET /attendance/summary?period=week → total jam & jobs per member
func (ctrl *AttendanceReportController) Summary(c *fiber.Ctx) error {
	records, from, to, err := ctrl.loadRange(c)
	if err != nil {
		return err
	}

	hours, order := service.AggregateByMember(records, service.MetricHours)
	jobs, _ := service.AggregateByMember(records, service.MetricJobs)

	days := map[string]int{}
	for _, rec := range records {
		days[rec.AttendanceRecordMemberID.String()]++
	}

	out := make([]dto.MemberSummaryDTO, 0, len(order))
	for _, id := range order {
		out = append(out, dto.MemberSummaryDTO{
			MemberID:   id.String(),
			TotalHours: hours[id],
			TotalJobs:  int(jobs[id]),
			Days:       days[id.String()],
		})
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"from":    from,
		"to":      to,
		"summary": out,
	})
}

/* ===================== TOP PERFORMER ===================== */
// GET /attendance/top-performer?metric=hours|jobs&period=week
func (ctrl *AttendanceReportController) TopPerformer(c *fiber.Ctx) error {
	metric := strings.ToLower(strings.TrimSpace(c.Query("metric", service.MetricHours)))
	if metric != service.MetricHours && metric != service.MetricJobs {
		return fiber.NewError(fiber.StatusBadRequest, "metric harus hours atau jobs")
	}

	records, from, to, err := ctrl.loadRange(c)
	if err != nil {
		return err
	}

	memberID, total, ok := service.TopPerformer(records, metric)
	if !ok {
		return helper.JsonOK(c, "Tidak ada data absensi pada rentang ini", nil)
	}
	return helper.JsonOK(c, "ok", dto.TopPerformerDTO{
		MemberID: memberID.String(),
		Metric:   metric,
		Total:    total,
		From:     from,
		To:       to,
	})
}

/* ===================== EXPORT EXCEL ===================== */
// GET /attendance/export?from=&to= → .xlsx rekap absensi
func (ctrl *AttendanceReportController) ExportExcel(c *fiber.Ctx) error {
	records, from, to, err := ctrl.loadRange(c)
	if err != nil {
		return err
	}

	// nama member untuk kolom laporan
	names := map[string]string{}
	var members []memberModel.TeamMemberModel
	if err := ctrl.DB.Find(&members).Error; err == nil {
		for _, m := range members {
			names[m.TeamMemberID.String()] = m.TeamMemberFullName
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Absensi"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Tanggal", "Member", "Status", "Check In", "Check Out", "Sesi", "Total Jam", "Jobs Applied"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, rec := range records {
		d := dto.ToAttendanceRecordDTO(rec)
		name := names[d.MemberID]
		if name == "" {
			name = d.MemberID
		}
		in, out := "", ""
		if d.CheckInTime != nil {
			in = *d.CheckInTime
		}
		if d.CheckOutTime != nil {
			out = *d.CheckOutTime
		}
		values := []any{d.Date, name, d.Status, in, out, len(d.Sessions), d.TotalHours, d.TotalJobs}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}

	filename := fmt.Sprintf("absensi_%s_%s.xlsx", from, to)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
