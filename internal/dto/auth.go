package dto

import "inflo_backend/internal/models"

type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=5"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=5"`
	OTP         string `json:"otp" validate:"required,len=4"`
}

type VerifyOTPResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

type CreateUserRequest struct {
	Role          models.UserRole `json:"role" validate:"required,oneof=creator brand"`
	PhoneNumber   string          `json:"phoneNumber,omitempty"`
	Email         string          `json:"email,omitempty" validate:"omitempty,email"`
	Name          string          `json:"name,omitempty"`
	DateOfBirth   string          `json:"dateOfBirth,omitempty"`
	Category      string          `json:"category,omitempty"`
	InstagramLink string          `json:"instagramLink,omitempty"`
	Address       string          `json:"address,omitempty"`
	BrandName     string          `json:"brandName,omitempty"`
	BrandLogo     string          `json:"brandLogo,omitempty"`
}

type CreateUserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}
