// file: internals/features/work/attendance/service/aggregate.go
package service

import (
	"github.com/google/uuid"

	"staffhub_backend/internals/features/work/attendance/model"
)

/* =======================================================
   Agregasi lintas record (leaderboard "top performer")
========================================================*/

const (
	MetricHours = "hours"
	MetricJobs  = "jobs"
)

// RecordHours: total jam kerja satu record (format baru ataupun legacy).
func RecordHours(rec model.AttendanceRecordModel) float64 {
	sessions := DecodeSessions(rec.AttendanceRecordNotes)
	in, out := "", ""
	if rec.AttendanceRecordCheckInTime != nil {
		in = *rec.AttendanceRecordCheckInTime
	}
	if rec.AttendanceRecordCheckOutTime != nil {
		out = *rec.AttendanceRecordCheckOutTime
	}
	return TotalHoursForDay(sessions, in, out)
}

// RecordJobs: total jobs applied satu record.
func RecordJobs(rec model.AttendanceRecordModel) int {
	sessions := DecodeSessions(rec.AttendanceRecordNotes)
	return TotalJobsForDay(sessions, rec.AttendanceRecordNotes)
}

// AggregateByMember melipat record ke total per member sesuai metric
// ("hours" atau "jobs"). Urutan first-seen member ikut dikembalikan supaya
// pemenang tie-break deterministik: caller wajib memberi input terurut
// (query kita ORDER BY attendance_record_date, attendance_record_created_at).
func AggregateByMember(records []model.AttendanceRecordModel, metric string) (totals map[uuid.UUID]float64, order []uuid.UUID) {
	totals = make(map[uuid.UUID]float64, len(records))
	order = make([]uuid.UUID, 0, len(records))

	for _, rec := range records {
		id := rec.AttendanceRecordMemberID
		if _, seen := totals[id]; !seen {
			order = append(order, id)
			totals[id] = 0
		}
		switch metric {
		case MetricJobs:
			totals[id] += float64(RecordJobs(rec))
		default:
			totals[id] += RecordHours(rec)
		}
	}
	return totals, order
}

// TopPerformer: member pertama (urutan input) yang mencapai total maksimum.
// ok=false kalau tidak ada record.
func TopPerformer(records []model.AttendanceRecordModel, metric string) (memberID uuid.UUID, total float64, ok bool) {
	totals, order := AggregateByMember(records, metric)
	if len(order) == 0 {
		return uuid.Nil, 0, false
	}
	memberID = order[0]
	total = totals[memberID]
	for _, id := range order[1:] {
		if totals[id] > total {
			memberID = id
			total = totals[id]
		}
	}
	return memberID, total, true
}
