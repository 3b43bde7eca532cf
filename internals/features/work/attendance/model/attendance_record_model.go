package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecordModel: satu baris per (member, tanggal).
// Kolom notes menyimpan session log JSON (format baru) atau teks bebas legacy
// dengan marker "Jobs Applied: N" (read-only compat).
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordMemberID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_member_id;uniqueIndex:uq_attendance_member_date,priority:1" json:"attendance_record_member_id"`
	AttendanceRecordDate     time.Time `gorm:"type:date;not null;column:attendance_record_date;uniqueIndex:uq_attendance_member_date,priority:2" json:"attendance_record_date"`

	// present | absent | late | half-day
	AttendanceRecordStatus string `gorm:"type:varchar(20);not null;default:'present';column:attendance_record_status" json:"attendance_record_status"`

	// Field legacy single-span (di-back-fill dari session log)
	AttendanceRecordCheckInTime  *string `gorm:"type:varchar(8);column:attendance_record_check_in_time"  json:"attendance_record_check_in_time,omitempty"`
	AttendanceRecordCheckOutTime *string `gorm:"type:varchar(8);column:attendance_record_check_out_time" json:"attendance_record_check_out_time,omitempty"`

	AttendanceRecordNotes string `gorm:"type:text;column:attendance_record_notes" json:"attendance_record_notes"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time      `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index"          json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
