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

// ProfileRepository handles profiles table operations
type ProfileRepository struct {
	db *pgxpool.Pool
}

var _ IProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile row. The id is the identity-provider user
// id; a conflicting id yields no row rather than an error so a failed
// signup can be reported and compensated.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	created := &models.Profile{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO profiles (id, first_name, last_name, bio, type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING id, first_name, last_name, bio, type`,
		profile.ID, profile.FirstName, profile.LastName, profile.Bio, profile.Type).Scan(
		&created.ID, &created.FirstName, &created.LastName, &created.Bio, &created.Type)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return created, nil
}

// GetByID retrieves a profile by id
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, bio, type
		FROM profiles
		WHERE id = $1`,
		id).Scan(&profile.ID, &profile.FirstName, &profile.LastName, &profile.Bio, &profile.Type)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}

	return profile, nil
}
