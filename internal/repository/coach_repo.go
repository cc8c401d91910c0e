package repository

import (
	"context"
	"errors"
	"fmt"

	"coaching_marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// CoachRepository defines operations for coach profile data
type CoachRepository interface {
	Create(ctx context.Context, coach *model.Coach) error
	FindByUserID(ctx context.Context, userID string) (*model.Coach, error)
}

type coachRepository struct {
	db DB
}

// NewCoachRepository creates a new CoachRepository
func NewCoachRepository(db DB) CoachRepository {
	return &coachRepository{db: db}
}

// Create inserts a new coach profile into the database
func (r *coachRepository) Create(ctx context.Context, coach *model.Coach) error {
	sql := `INSERT INTO coaches (id, user_id, experience_years, description, profile_image_url, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, coach.ID, coach.UserID, coach.ExperienceYears, coach.Description, coach.ProfileImageURL, coach.CreatedAt, coach.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create coach: %w", err)
	}
	return nil
}

// FindByUserID retrieves the coach profile linked to a user
func (r *coachRepository) FindByUserID(ctx context.Context, userID string) (*model.Coach, error) {
	c := &model.Coach{}
	sql := `SELECT id, user_id, experience_years, description, profile_image_url, created_at, updated_at
            FROM coaches WHERE user_id = $1`
	err := r.db.QueryRow(ctx, sql, userID).Scan(&c.ID, &c.UserID, &c.ExperienceYears, &c.Description, &c.ProfileImageURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find coach by user ID: %w", err)
	}
	return c, nil
}
