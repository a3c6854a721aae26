// Package services holds the business logic that glues the hosted auth
// provider and the table store together.
//
// Services defined in this package:
// - AuthService: instructor signup (with rollback), login, token refresh
// - ClassService: course record creation
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/faceit/backend/internal/app/models/dto"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	SignupInstructor(ctx context.Context, req *dto.InstructorSignupRequest) (*dto.InstructorSignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
}

// IClassService defines the interface for class operations
type IClassService interface {
	CreateClass(ctx context.Context, instructorID uuid.UUID, req *dto.CreateClassRequest) (*dto.CreateClassResponse, error)
}
