package dto

import (
	"time"

	"github.com/google/uuid"

	"staffhub_backend/internals/features/storage/files/model"
)

type StoredFileDTO struct {
	StoredFileID               uuid.UUID  `json:"stored_file_id"`
	StoredFileName             string     `json:"stored_file_name"`
	StoredFileObjectKey        string     `json:"stored_file_object_key"`
	StoredFileURL              string     `json:"stored_file_url"`
	StoredFileFolder           string     `json:"stored_file_folder"`
	StoredFileSize             int64      `json:"stored_file_size"`
	StoredFileContentType      string     `json:"stored_file_content_type"`
	StoredFileScope            string     `json:"stored_file_scope"`
	StoredFileUploaderMemberID *uuid.UUID `json:"stored_file_uploader_member_id,omitempty"`
	StoredFileCreatedAt        time.Time  `json:"stored_file_created_at"`
}

func ToStoredFileDTO(m model.StoredFileModel) StoredFileDTO {
	return StoredFileDTO{
		StoredFileID:               m.StoredFileID,
		StoredFileName:             m.StoredFileName,
		StoredFileObjectKey:        m.StoredFileObjectKey,
		StoredFileURL:              m.StoredFileURL,
		StoredFileFolder:           m.StoredFileFolder,
		StoredFileSize:             m.StoredFileSize,
		StoredFileContentType:      m.StoredFileContentType,
		StoredFileScope:            m.StoredFileScope,
		StoredFileUploaderMemberID: m.StoredFileUploaderMemberID,
		StoredFileCreatedAt:        m.StoredFileCreatedAt,
	}
}

func ToStoredFileDTOs(ms []model.StoredFileModel) []StoredFileDTO {
	out := make([]StoredFileDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStoredFileDTO(m))
	}
	return out
}
