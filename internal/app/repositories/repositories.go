// Package repositories provides table access for the hosted Postgres
// store. Inserts use ON CONFLICT DO NOTHING with RETURNING so "the
// insert produced no row" is an outcome (nil, nil) the services can
// distinguish from a store fault.
package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faceit/backend/internal/app/models"
)

// IProfileRepository defines the interface for profile table operations
type IProfileRepository interface {
	// Create inserts a profile row. Returns (nil, nil) when the insert
	// produced no row.
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	// GetByID fetches a profile row. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// IInstructorRepository defines the interface for instructor table operations
type IInstructorRepository interface {
	// Create inserts an instructor row. Returns (nil, nil) when the
	// insert produced no row.
	Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
}

// IClassRepository defines the interface for class table operations
type IClassRepository interface {
	// Create inserts a class row. Returns (nil, nil) when the insert
	// produced no row.
	Create(ctx context.Context, class *models.Class) (*models.Class, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	ProfileRepository    *ProfileRepository
	InstructorRepository *InstructorRepository
	ClassRepository      *ClassRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfileRepository:    NewProfileRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		ClassRepository:      NewClassRepository(db),
	}
}
