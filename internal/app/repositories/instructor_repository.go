package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faceit/backend/internal/app/models"
)

// InstructorRepository handles instructors table operations
type InstructorRepository struct {
	db *pgxpool.Pool
}

var _ IInstructorRepository = (*InstructorRepository)(nil)

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// Create inserts an instructor row keyed by the profile id.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	created := &models.Instructor{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO instructors (id, department, office_location)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
		RETURNING id, department, office_location`,
		instructor.ID, instructor.Department, instructor.OfficeLocation).Scan(
		&created.ID, &created.Department, &created.OfficeLocation)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error creating instructor: %w", err)
	}

	return created, nil
}
