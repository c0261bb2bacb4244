package dto

import (
	"time"

	"github.com/resonira/invoice-api/internal/domain/entity"
)

// LoginRequest credentials payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the account without its password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse successful login body. Token is a signed JWT for the profile routes.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// UpdateProfileRequest partial profile update. Setting NewPassword requires
// CurrentPassword to match the stored hash.
type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ProfileUpdateResponse body of a successful profile change.
type ProfileUpdateResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// ToUserResponse strips the credential fields off an account.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		UpdatedAt: u.UpdatedAt,
	}
}
