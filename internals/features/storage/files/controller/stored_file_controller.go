package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffhub_backend/internals/features/storage/files/dto"
	"staffhub_backend/internals/features/storage/files/model"
	"staffhub_backend/internals/features/storage/files/service"
	memberModel "staffhub_backend/internals/features/team/members/model"
	helper "staffhub_backend/internals/helpers"
	helperOSS "staffhub_backend/internals/helpers/oss"
)

type StoredFileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStoredFileController(db *gorm.DB) *StoredFileController {
	return &StoredFileController{
		DB:       db,
		Validate: validator.New(),
	}
}

func validScope(scope string) bool {
	switch scope {
	case "team", "consultant", "chat":
		return true
	}
	return false
}

// uploaderMemberID mencari member milik user login; nil kalau user
// belum terhubung ke record member.
func (ctrl *StoredFileController) uploaderMemberID(c *fiber.Ctx) *uuid.UUID {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return nil
	}
	var member memberModel.TeamMemberModel
	if err := ctrl.DB.First(&member, "team_member_user_id = ?", userID).Error; err != nil {
		return nil
	}
	return &member.TeamMemberID
}

/* ===== UPLOAD ===== */

func (ctrl *StoredFileController) UploadFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File wajib diupload di field 'file'")
	}

	folder := strings.Trim(strings.TrimSpace(c.FormValue("folder", "team/shared")), "/")
	if folder == "" {
		folder = "team/shared"
	}
	scope := strings.TrimSpace(c.FormValue("scope", "team"))
	if !validScope(scope) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scope harus team, consultant, atau chat")
	}

	blobSvc, err := helperOSS.NewBlobServiceFromEnv()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Storage belum dikonfigurasi")
	}

	blob, err := blobSvc.UploadMultipart(fh, folder)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengupload file")
	}

	row := model.StoredFileModel{
		StoredFileName:             blob.FileName,
		StoredFileObjectKey:        blob.ObjectKey,
		StoredFileURL:              blob.PublicURL,
		StoredFileFolder:           folder,
		StoredFileSize:             blob.Size,
		StoredFileContentType:      blob.ContentType,
		StoredFileScope:            scope,
		StoredFileUploaderMemberID: ctrl.uploaderMemberID(c),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		// metadata gagal disimpan: bersihkan objek yang sudah terlanjur naik
		if delErr := blobSvc.DeleteByPublicURL(blob.PublicURL); delErr != nil {
			log.Printf("[ERROR] Rollback objek %s: %v", blob.ObjectKey, delErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan metadata file")
	}

	return helper.JsonCreated(c, "File berhasil diupload", dto.ToStoredFileDTO(row))
}

/* ===== READ ===== */

func (ctrl *StoredFileController) ListFiles(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.StoredFileModel{})

	if folder := strings.Trim(strings.TrimSpace(c.Query("folder")), "/"); folder != "" {
		q = q.Where("stored_file_folder = ? OR stored_file_folder LIKE ?", folder, folder+"/%")
	}
	if scope := strings.TrimSpace(c.Query("scope")); scope != "" {
		if !validScope(scope) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Scope harus team, consultant, atau chat")
		}
		q = q.Where("stored_file_scope = ?", scope)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung file")
	}

	var rows []model.StoredFileModel
	if err := q.
		Order("stored_file_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar file")
	}

	return helper.JsonList(c, "ok", dto.ToStoredFileDTOs(rows), helper.BuildPagination(total, paging, len(rows)))
}

// ListFolders menurunkan pohon folder dari seluruh object key tersimpan.
func (ctrl *StoredFileController) ListFolders(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.StoredFileModel{})
	if scope := strings.TrimSpace(c.Query("scope")); scope != "" {
		if !validScope(scope) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Scope harus team, consultant, atau chat")
		}
		q = q.Where("stored_file_scope = ?", scope)
	}

	var keys []string
	if err := q.Pluck("stored_file_object_key", &keys).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil object key")
	}

	return helper.JsonOK(c, "ok", fiber.Map{"folders": service.DeriveFolders(keys)})
}

/* ===== DELETE ===== */

func (ctrl *StoredFileController) DeleteFile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID file tidak valid")
	}

	var row model.StoredFileModel
	if err := ctrl.DB.First(&row, "stored_file_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "File tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil file")
	}

	blobSvc, err := helperOSS.NewBlobServiceFromEnv()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Storage belum dikonfigurasi")
	}
	if err := blobSvc.DeleteByPublicURL(row.StoredFileURL); err != nil {
		log.Printf("[ERROR] Hapus objek %s: %v", row.StoredFileObjectKey, err)
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus metadata file")
	}

	return helper.JsonDeleted(c, "File berhasil dihapus", fiber.Map{"stored_file_id": id})
}
