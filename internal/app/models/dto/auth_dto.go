package dto

import (
	"github.com/google/uuid"

	"github.com/faceit/backend/internal/app/models"
)

// InstructorSignupRequest represents instructor registration data
type InstructorSignupRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	FirstName      string  `json:"firstName" binding:"required,min=1,max=100"`
	LastName       string  `json:"lastName" binding:"required,min=1,max=100"`
	Bio            *string `json:"bio,omitempty" binding:"omitempty,max=500"`
	Department     *string `json:"department,omitempty" binding:"omitempty,max=100"`
	OfficeLocation *string `json:"officeLocation,omitempty" binding:"omitempty,max=200"`
}

// TokenData represents the token portion shared by auth responses
type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType" example:"bearer"`
}

// InstructorSignupResponse echoes the created identity and records
type InstructorSignupResponse struct {
	TokenData

	UserID         uuid.UUID          `json:"userId"`
	Email          string             `json:"email"`
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	Bio            *string            `json:"bio"`
	Type           models.ProfileType `json:"type"`
	Department     *string            `json:"department"`
	OfficeLocation *string            `json:"officeLocation"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries tokens plus the caller's profile fields
type LoginResponse struct {
	TokenData

	UserID    uuid.UUID          `json:"userId"`
	Email     string             `json:"email"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Type      models.ProfileType `json:"type"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshResponse carries the newly issued token pair
type RefreshResponse struct {
	TokenData
}
