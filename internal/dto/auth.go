package dto

import (
	"time"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// --- Auth DTOs ---

// RegisterRequest defines data for creating a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=farmer labour partner employee admin"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required,mobile_in"`
	Area     string `json:"area" binding:"required"`
	State    string `json:"state" binding:"required"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPRequest defines the signup verification payload.
type VerifyOTPRequest struct {
	Username string `json:"username" binding:"required"`
	OTP      string `json:"otp" binding:"required,len=6"`
}

// LoginResponse carries the issued token and the user's public profile.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse defines the public view of a user.
type UserResponse struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Area      string    `json:"area"`
	State     string    `json:"state"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Role:      string(u.Role),
		FullName:  u.FullName,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Area:      u.Area,
		State:     u.State,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}

// UpdateProfileRequest defines the mutable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile" binding:"omitempty,mobile_in"`
	Area     string `json:"area"`
	State    string `json:"state"`
}
