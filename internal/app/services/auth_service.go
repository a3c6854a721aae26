package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/faceit/backend/internal/app/models"
	"github.com/faceit/backend/internal/app/models/dto"
	"github.com/faceit/backend/internal/app/repositories"
	"github.com/faceit/backend/internal/identity"
	"github.com/faceit/backend/internal/pkg/apperrors"
)

// AuthService orchestrates signup, login and token refresh against the
// hosted auth provider and the table store.
type AuthService struct {
	provider       identity.API
	profileRepo    repositories.IProfileRepository
	instructorRepo repositories.IInstructorRepository
	logger         zerolog.Logger
}

var _ IAuthService = (*AuthService)(nil)

// NewAuthService creates a new AuthService
func NewAuthService(
	provider identity.API,
	profileRepo repositories.IProfileRepository,
	instructorRepo repositories.IInstructorRepository,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		provider:       provider,
		profileRepo:    profileRepo,
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// SignupInstructor creates an auth user, then inserts the profile and
// instructor rows. If any step fails after the auth user exists, the
// auth user is deleted (best effort) before the error propagates.
// The table rows themselves are not rolled back: a partially inserted
// profile row stays behind when the instructor insert fails. The
// inserts converge on retry, so the gap is tolerated rather than fixed
// here.
func (s *AuthService) SignupInstructor(ctx context.Context, req *dto.InstructorSignupRequest) (*dto.InstructorSignupResponse, error) {
	// Step 1: create the auth user. Nothing to compensate if this
	// fails.
	result, err := s.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, apperrors.NewSignupError("Signup failed: %v", err)
	}
	if result.User == nil {
		return nil, apperrors.NewSignupError("Failed to create auth user")
	}

	userID := result.User.ID

	response, err := s.completeSignup(ctx, userID, result.Session, req)
	if err != nil {
		// The auth user exists but the signup did not complete; always
		// attempt the compensating delete before propagating.
		s.rollbackAuthUser(ctx, userID)

		if apperrors.IsSignupError(err) {
			return nil, err
		}
		return nil, apperrors.NewSignupError("Signup failed: %v", err)
	}

	return response, nil
}

// completeSignup runs the steps that follow auth user creation. Any
// error returned here triggers compensation in the caller.
func (s *AuthService) completeSignup(
	ctx context.Context,
	userID uuid.UUID,
	session *identity.Session,
	req *dto.InstructorSignupRequest,
) (*dto.InstructorSignupResponse, error) {
	if session == nil {
		return nil, apperrors.NewSignupError("Failed to create auth session")
	}

	// Step 2: profile row, sharing the auth user id.
	profile, err := s.profileRepo.Create(ctx, &models.Profile{
		ID:        userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Type:      models.ProfileTypeInstructor,
	})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewSignupError("Failed to create profile record")
	}

	// Step 3: instructor row.
	instructor, err := s.instructorRepo.Create(ctx, &models.Instructor{
		ID:             userID,
		Department:     req.Department,
		OfficeLocation: req.OfficeLocation,
	})
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, apperrors.NewSignupError("Failed to create instructor record")
	}

	s.logger.Info().
		Str("userId", userID.String()).
		Str("email", req.Email).
		Msg("Instructor signup completed")

	return &dto.InstructorSignupResponse{
		TokenData: dto.TokenData{
			AccessToken:  session.AccessToken,
			RefreshToken: session.RefreshToken,
			TokenType:    "bearer",
		},
		UserID:         userID,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Bio:            req.Bio,
		Type:           models.ProfileTypeInstructor,
		Department:     req.Department,
		OfficeLocation: req.OfficeLocation,
	}, nil
}

// rollbackAuthUser deletes a partially signed-up auth user. Failures
// are logged and swallowed; the signup error that triggered the
// rollback always wins.
func (s *AuthService) rollbackAuthUser(ctx context.Context, userID uuid.UUID) {
	if err := s.provider.AdminDeleteUser(ctx, userID); err != nil {
		s.logger.Warn().
			Err(err).
			Str("userId", userID.String()).
			Msg("Failed to roll back auth user after signup failure")
		return
	}

	s.logger.Info().
		Str("userId", userID.String()).
		Msg("Rolled back auth user after signup failure")
}

// Login authenticates a user and returns tokens plus profile fields.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	result, err := s.provider.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		if identity.IsInvalidGrant(err) {
			return nil, apperrors.NewLoginError("Invalid email or password")
		}
		return nil, apperrors.NewLoginError("Login failed: %v", err)
	}
	if result.User == nil || result.Session == nil {
		return nil, apperrors.NewLoginError("Invalid email or password")
	}

	profile, err := s.profileRepo.GetByID(ctx, result.User.ID)
	if err != nil {
		return nil, apperrors.NewLoginError("Login failed: %v", err)
	}
	if profile == nil {
		return nil, apperrors.NewLoginError("User profile not found")
	}

	email := result.User.Email
	if email == "" {
		email = req.Email
	}

	return &dto.LoginResponse{
		TokenData: dto.TokenData{
			AccessToken:  result.Session.AccessToken,
			RefreshToken: result.Session.RefreshToken,
			TokenType:    "bearer",
		},
		UserID:    result.User.ID,
		Email:     email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Type:      profile.Type,
	}, nil
}

// RefreshToken exchanges a refresh token for a new token pair.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	result, err := s.provider.RefreshSession(ctx, refreshToken)
	if err != nil {
		if identity.IsInvalidGrant(err) {
			return nil, apperrors.NewRefreshError("Failed to refresh token")
		}
		return nil, apperrors.NewRefreshError("Token refresh failed: %v", err)
	}
	if result.Session == nil {
		return nil, apperrors.NewRefreshError("Failed to refresh token")
	}

	return &dto.RefreshResponse{
		TokenData: dto.TokenData{
			AccessToken:  result.Session.AccessToken,
			RefreshToken: result.Session.RefreshToken,
			TokenType:    "bearer",
		},
	}, nil
}
