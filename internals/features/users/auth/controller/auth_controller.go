// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "staffhub_backend/internals/features/users/auth/repository"
	authService "staffhub_backend/internals/features/users/auth/service"
	userModel "staffhub_backend/internals/features/users/user/model"
	helper "staffhub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* ===================== REGISTER ===================== */
// POST /auth/register (admin-gated di route)
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=owner admin staff"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     req.Role,
	}
	user.SetDefaultValues()

	if err := authRepo.CreateUser(ctrl.DB, &user); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

/* ===================== LOGIN ===================== */
// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmailOrUsername(ctrl.DB, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, accessExp, err := authService.CreateAccessToken(user, 0)
	if err != nil {
		return err
	}
	refresh, refreshExp, err := authService.CreateRefreshToken(user, 0)
	if err != nil {
		return err
	}

	// simpan hash refresh token untuk rotasi
	ua := c.Get("User-Agent")
	ip := c.IP()
	rt := authService.BuildRefreshTokenRow(user.ID, refresh, refreshExp, &ua, &ip)
	if err := authRepo.StoreRefreshToken(ctrl.DB, rt); err != nil {
		log.Println("[ERROR] Gagal simpan refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	setAuthCookies(c, access, accessExp, refresh, refreshExp)

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"expires_at":    accessExp,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* ===================== REFRESH ===================== */
// POST /auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		var req struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&req)
		raw = strings.TrimSpace(req.RefreshToken)
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	claims, err := authService.ParseRefreshToken(raw)
	if err != nil {
		return err
	}
	userIDStr, _ := claims["user_id"].(string)
	userID, perr := uuid.Parse(userIDStr)
	if perr != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	// token harus masih aktif di DB (belum direvoke / dirotasi)
	row, err := authRepo.FindActiveRefreshToken(ctrl.DB, userID, authService.HashRefreshToken(raw))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token sudah tidak berlaku")
	}

	user, err := authRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// rotasi: revoke lama, terbitkan baru
	if err := authRepo.RevokeRefreshToken(ctrl.DB, row.ID); err != nil {
		log.Println("[ERROR] Gagal revoke refresh token:", err)
	}

	access, accessExp, err := authService.CreateAccessToken(user, 0)
	if err != nil {
		return err
	}
	refresh, refreshExp, err := authService.CreateRefreshToken(user, 0)
	if err != nil {
		return err
	}
	ua := c.Get("User-Agent")
	ip := c.IP()
	if err := authRepo.StoreRefreshToken(ctrl.DB, authService.BuildRefreshTokenRow(user.ID, refresh, refreshExp, &ua, &ip)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	setAuthCookies(c, access, accessExp, refresh, refreshExp)

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"expires_at":    accessExp,
	})
}

/* ===================== LOGOUT ===================== */
// POST /auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		// masukkan access token ke blacklist sampai exp-nya
		exp := time.Now().Add(authService.AccessTTLDefault)
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(""), nil
		}); err == nil {
			if expFloat, ok := claims["exp"].(float64); ok {
				exp = time.Unix(int64(expFloat), 0)
			}
		}
		if err := authRepo.BlacklistToken(ctrl.DB, raw, exp); err != nil {
			log.Println("[ERROR] Gagal blacklist token:", err)
		}
	}

	if userID, err := helper.GetUserIDFromLocals(c); err == nil {
		if err := authRepo.RevokeAllRefreshTokensForUser(ctrl.DB, userID); err != nil {
			log.Println("[ERROR] Gagal revoke refresh tokens:", err)
		}
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ===================== CHANGE PASSWORD ===================== */
// POST /auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	if err := authRepo.UpdateUserPassword(ctrl.DB, user.ID, string(hashed)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update password")
	}
	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}

/* ===================== cookies ===================== */

func setAuthCookies(c *fiber.Ctx, access string, accessExp time.Time, refresh string, refreshExp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  accessExp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  refreshExp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
}
