package repository

import (
	"context"
	"errors"
	"fmt"

	"coaching_marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// CourseRepository defines operations for course data
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id string) (*model.Course, error)
	Update(ctx context.Context, course *model.Course) (int64, error)
}

type courseRepository struct {
	db DB
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create inserts a new course into the database
func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	sql := `INSERT INTO courses (id, user_id, skill_id, name, description, start_at, end_at, max_participants, meeting_url, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, sql,
		course.ID, course.UserID, course.SkillID, course.Name, course.Description,
		course.StartAt, course.EndAt, course.MaxParticipants, course.MeetingURL,
		course.CreatedAt, course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// FindByID retrieves a course by its ID
func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	c := &model.Course{}
	sql := `SELECT id, user_id, skill_id, name, description, start_at, end_at, max_participants, meeting_url, created_at, updated_at
            FROM courses WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&c.ID, &c.UserID, &c.SkillID, &c.Name, &c.Description,
		&c.StartAt, &c.EndAt, &c.MaxParticipants, &c.MeetingURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find course by ID: %w", err)
	}
	return c, nil
}

// Update rewrites the editable columns of a course and reports the
// affected row count
func (r *courseRepository) Update(ctx context.Context, course *model.Course) (int64, error) {
	sql := `UPDATE courses
            SET skill_id = $1, name = $2, description = $3, start_at = $4, end_at = $5,
                max_participants = $6, meeting_url = $7, updated_at = NOW()
            WHERE id = $8`
	tag, err := r.db.Exec(ctx, sql,
		course.SkillID, course.Name, course.Description, course.StartAt, course.EndAt,
		course.MaxParticipants, course.MeetingURL, course.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update course: %w", err)
	}
	return tag.RowsAffected(), nil
}
