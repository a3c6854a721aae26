package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faceit/backend/internal/app/models"
)

// ClassRepository handles classes table operations
type ClassRepository struct {
	db *pgxpool.Pool
}

var _ IClassRepository = (*ClassRepository)(nil)

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts a class row. No uniqueness is enforced at this layer;
// duplicate course/section/term combinations are left to the store.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (*models.Class, error) {
	id := class.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created := &models.Class{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO classes (id, instructor_id, course_code, course_name, section, term, schedule, room)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
		RETURNING id, instructor_id, course_code, course_name, section, term, schedule, room`,
		id, class.InstructorID, class.CourseCode, class.CourseName, class.Section,
		class.Term, class.Schedule, class.Room).Scan(
		&created.ID, &created.InstructorID, &created.CourseCode, &created.CourseName,
		&created.Section, &created.Term, &created.Schedule, &created.Room)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error creating class: %w", err)
	}

	return created, nil
}
