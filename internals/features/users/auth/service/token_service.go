// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"staffhub_backend/internals/configs"
	authModel "staffhub_backend/internals/features/users/auth/model"
	userModel "staffhub_backend/internals/features/users/user/model"
)

const (
	AccessTTLDefault  = 24 * time.Hour
	RefreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// CreateAccessToken menandatangani JWT access dengan klaim user_id/user_name/role.
func CreateAccessToken(user *userModel.UserModel, ttl time.Duration) (string, time.Time, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", time.Time{}, err
	}
	if ttl <= 0 {
		ttl = AccessTTLDefault
	}
	exp := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"exp":       exp.Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	return signed, exp, nil
}

// CreateRefreshToken menandatangani JWT refresh (secret terpisah).
func CreateRefreshToken(user *userModel.UserModel, ttl time.Duration) (string, time.Time, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", time.Time{}, err
	}
	if ttl <= 0 {
		ttl = RefreshTTLDefault
	}
	exp := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"typ":     "refresh",
		"exp":     exp.Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	return signed, exp, nil
}

// ParseRefreshToken memverifikasi refresh token dan mengembalikan klaimnya.
func ParseRefreshToken(raw string) (jwt.MapClaims, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return nil, err
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	return claims, nil
}

// HashRefreshToken: HMAC-SHA256 supaya DB tidak menyimpan token plaintext.
func HashRefreshToken(raw string) []byte {
	secret, _ := getRefreshSecret()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}

// BuildRefreshTokenRow menyiapkan row refresh token (hash + metadata device).
func BuildRefreshTokenRow(userID uuid.UUID, raw string, expiresAt time.Time, userAgent, ip *string) *authModel.RefreshTokenModel {
	return &authModel.RefreshTokenModel{
		UserID:    userID,
		TokenHash: HashRefreshToken(raw),
		ExpiresAt: expiresAt,
		UserAgent: userAgent,
		IP:        ip,
	}
}
