package dto

import (
	"time"

	"rishta_backend/internal/models"
)

// RegisterRequest - sign-up payload. ReferralCode is optional and redeemed
// during registration when present.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	DisplayName  string `json:"display_name" validate:"required,min=2,max=64"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// LoginRequest - login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest - token refresh payload.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest - logout payload.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// VerifyEmailRequest - email confirmation payload.
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// PasswordResetRequest - request a reset email.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm - complete a reset with the emailed token.
type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// AuthResponse - token pair plus the authenticated user.
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// UserDTO - basic account information.
type UserDTO struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	Role         models.UserRole   `json:"role"`
	Status       models.UserStatus `json:"status"`
	IsVerified   bool              `json:"is_verified"`
	ReferralCode string            `json:"referral_code"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewUserDTO maps a user model to its transport shape.
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Email:        user.Email,
		Role:         user.Role,
		Status:       user.Status,
		IsVerified:   user.IsVerified,
		ReferralCode: user.ReferralCode,
		CreatedAt:    user.CreatedAt,
	}
}
