package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/faceit/backend/internal/app/models"
	"github.com/faceit/backend/internal/app/models/dto"
	"github.com/faceit/backend/internal/app/repositories"
	"github.com/faceit/backend/internal/pkg/apperrors"
)

// ClassService handles course record creation for instructors.
type ClassService struct {
	classRepo repositories.IClassRepository
	logger    zerolog.Logger
}

var _ IClassService = (*ClassService)(nil)

// NewClassService creates a new ClassService
func NewClassService(classRepo repositories.IClassRepository, logger zerolog.Logger) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		logger:    logger,
	}
}

// CreateClass inserts one class row scoped to the instructor. A pure
// create: there is no prior step to compensate.
func (s *ClassService) CreateClass(ctx context.Context, instructorID uuid.UUID, req *dto.CreateClassRequest) (*dto.CreateClassResponse, error) {
	created, err := s.classRepo.Create(ctx, &models.Class{
		InstructorID: instructorID,
		CourseCode:   req.CourseCode,
		CourseName:   req.CourseName,
		Section:      req.Section,
		Term:         req.Term,
		Schedule:     req.Schedule,
		Room:         req.Room,
	})
	if err != nil {
		return nil, apperrors.NewCreateClassError("Class creation failed: %v", err)
	}
	if created == nil {
		return nil, apperrors.NewCreateClassError("Failed to create class record")
	}

	s.logger.Info().
		Str("classId", created.ID.String()).
		Str("instructorId", instructorID.String()).
		Str("courseCode", created.CourseCode).
		Msg("Class created")

	return &dto.CreateClassResponse{
		ClassID:      created.ID,
		InstructorID: created.InstructorID,
		CourseCode:   created.CourseCode,
		CourseName:   created.CourseName,
		Section:      created.Section,
		Term:         created.Term,
		Schedule:     created.Schedule,
		Room:         created.Room,
	}, nil
}
