package repository

import (
	"context"
	"errors"
	"fmt"

	"coaching_marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// SkillRepository defines operations for skill data
type SkillRepository interface {
	FindAll(ctx context.Context) ([]model.Skill, error)
	FindByName(ctx context.Context, name string) (*model.Skill, error)
	FindByID(ctx context.Context, id string) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id string) (int64, error)
}

type skillRepository struct {
	db DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db DB) SkillRepository {
	return &skillRepository{db: db}
}

// FindAll retrieves every skill
func (r *skillRepository) FindAll(ctx context.Context) ([]model.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM skills ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var skills []model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}
	return skills, nil
}

// FindByName retrieves a skill by its exact name
func (r *skillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	s := &model.Skill{}
	err := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM skills WHERE name = $1`, name).
		Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find skill by name: %w", err)
	}
	return s, nil
}

// FindByID retrieves a skill by its ID
func (r *skillRepository) FindByID(ctx context.Context, id string) (*model.Skill, error) {
	s := &model.Skill{}
	err := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM skills WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find skill by ID: %w", err)
	}
	return s, nil
}

// Create inserts a new skill into the database
func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	sql := `INSERT INTO skills (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, sql, skill.ID, skill.Name, skill.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// Delete removes a skill by ID and reports the affected row count
func (r *skillRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete skill: %w", err)
	}
	return tag.RowsAffected(), nil
}
