package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoredFileModel: metadata file yang diupload ke object storage.
// Scope: team | consultant | chat
type StoredFileModel struct {
	StoredFileID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:stored_file_id" json:"stored_file_id"`

	StoredFileName      string `gorm:"size:255;not null;column:stored_file_name" json:"stored_file_name"`
	StoredFileObjectKey string `gorm:"type:text;unique;not null;column:stored_file_object_key" json:"stored_file_object_key"`
	StoredFileURL       string `gorm:"type:text;not null;column:stored_file_url" json:"stored_file_url"`

	StoredFileFolder      string `gorm:"size:255;not null;index;column:stored_file_folder" json:"stored_file_folder"`
	StoredFileSize        int64  `gorm:"not null;default:0;column:stored_file_size" json:"stored_file_size"`
	StoredFileContentType string `gorm:"size:100;column:stored_file_content_type" json:"stored_file_content_type"`

	StoredFileScope string `gorm:"type:varchar(20);not null;default:'team';column:stored_file_scope" json:"stored_file_scope"`

	StoredFileUploaderMemberID *uuid.UUID `gorm:"type:uuid;index;column:stored_file_uploader_member_id" json:"stored_file_uploader_member_id,omitempty"`

	StoredFileCreatedAt time.Time      `gorm:"column:stored_file_created_at;autoCreateTime" json:"stored_file_created_at"`
	StoredFileDeletedAt gorm.DeletedAt `gorm:"column:stored_file_deleted_at;index" json:"stored_file_deleted_at,omitempty"`
}

func (StoredFileModel) TableName() string { return "stored_files" }
