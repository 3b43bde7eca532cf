package dto

import (
	"time"

	"staffhub_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Update Request DTO
// ============================
type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// ============================
// Converter
// ============================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID.String(),
		UserName:  m.UserName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserDTOs(ms []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToUserDTO(m))
	}
	return out
}
