package seeds

import (
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staffhub_backend/internals/constants"
	userModel "staffhub_backend/internals/features/users/user/model"
)

// RunAllSeeds menjalankan seed idempoten saat startup.
// Saat ini hanya akun owner pertama; member/consultant masuk lewat API.
func RunAllSeeds(db *gorm.DB) {
	seedOwner(db)
}

// seedOwner membuat akun owner dari OWNER_EMAIL/OWNER_PASSWORD kalau
// belum ada owner sama sekali. Tanpa env, seed dilewati.
func seedOwner(db *gorm.DB) {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("OWNER_EMAIL")))
	password := os.Getenv("OWNER_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleOwner).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] Seed owner: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Seed owner hash password: %v", err)
		return
	}

	owner := userModel.UserModel{
		UserName: "Owner",
		Email:    email,
		Password: string(hashed),
		Role:     constants.RoleOwner,
		IsActive: true,
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Printf("[ERROR] Seed owner: %v", err)
		return
	}
	log.Printf("✅ Akun owner %s dibuat", email)
}
