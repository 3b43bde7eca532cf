package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"staffhub_backend/internals/features/work/attendance/model"
)

func mkRecord(memberID uuid.UUID, notes string, in, out string) model.AttendanceRecordModel {
	rec := model.AttendanceRecordModel{
		AttendanceRecordID:       uuid.New(),
		AttendanceRecordMemberID: memberID,
		AttendanceRecordDate:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		AttendanceRecordStatus:   "present",
		AttendanceRecordNotes:    notes,
	}
	if in != "" {
		rec.AttendanceRecordCheckInTime = &in
	}
	if out != "" {
		rec.AttendanceRecordCheckOutTime = &out
	}
	return rec
}

func TestRecordHoursMixedFormats(t *testing.T) {
	id := uuid.New()

	// format baru
	rec := mkRecord(id, `{"sessions":[{"in":"09:00:00","out":"13:00:00"},{"in":"14:00:00","out":"18:00:00"}]}`, "", "")
	if got := RecordHours(rec); !almostEqual(got, 8.0) {
		t.Errorf("RecordHours(json) = %v, want 8.0", got)
	}

	// legacy: notes bebas, jatuh ke single-span
	rec = mkRecord(id, "kerja onsite. Jobs Applied: 2", "10:00:00", "18:00:00")
	if got := RecordHours(rec); !almostEqual(got, 8.0) {
		t.Errorf("RecordHours(legacy) = %v, want 8.0", got)
	}
	if got := RecordJobs(rec); got != 2 {
		t.Errorf("RecordJobs(legacy) = %d, want 2", got)
	}
}

func TestAggregateByMember(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	records := []model.AttendanceRecordModel{
		mkRecord(a, `{"sessions":[{"in":"09:00:00","out":"12:00:00","jobs":1}]}`, "", ""),
		mkRecord(b, `{"sessions":[{"in":"09:00:00","out":"17:00:00","jobs":4}]}`, "", ""),
		mkRecord(a, `{"sessions":[{"in":"13:00:00","out":"18:00:00","jobs":2}]}`, "", ""),
	}

	totals, order := AggregateByMember(records, MetricHours)
	if len(order) != 2 || order[0] != a || order[1] != b {
		t.Fatalf("order = %v", order)
	}
	if !almostEqual(totals[a], 8.0) || !almostEqual(totals[b], 8.0) {
		t.Errorf("totals = %v", totals)
	}

	// tie 8.0 vs 8.0 → first-seen (a) menang
	winner, total, ok := TopPerformer(records, MetricHours)
	if !ok || winner != a || !almostEqual(total, 8.0) {
		t.Errorf("TopPerformer(hours) = %v %v %v", winner, total, ok)
	}

	// jobs: b menang 4 vs 3
	winner, total, ok = TopPerformer(records, MetricJobs)
	if !ok || winner != b || !almostEqual(total, 4) {
		t.Errorf("TopPerformer(jobs) = %v %v %v", winner, total, ok)
	}
}

func TestTopPerformerEmpty(t *testing.T) {
	if _, _, ok := TopPerformer(nil, MetricHours); ok {
		t.Error("TopPerformer(nil) harus ok=false")
	}
}
