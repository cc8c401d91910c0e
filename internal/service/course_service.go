package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coaching_marketplace/internal/model"
	"coaching_marketplace/internal/repository"
	"coaching_marketplace/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrNotACoach          = errors.New("user is not a coach")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseUpdateFailed = errors.New("failed to update course")
)

// CourseService provides the course create and edit workflows
type CourseService interface {
	Create(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error)
	Update(ctx context.Context, courseID string, req model.UpdateCourseRequest) (*model.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	skillRepo  repository.SkillRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repository.CourseRepository, userRepo repository.UserRepository, skillRepo repository.SkillRepository) CourseService {
	return &courseService{courseRepo: courseRepo, userRepo: userRepo, skillRepo: skillRepo}
}

// Create validates the payload, requires the owning user to exist with
// role "coach" and the skill to exist, then persists the course.
func (s *courseService) Create(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error) {
	if validation.IsMissing(req.UserID) ||
		validation.IsInvalidString(req.UserID) ||
		validation.IsMissing(req.SkillID) ||
		validation.IsInvalidString(req.SkillID) ||
		validation.IsMissing(req.Name) ||
		validation.IsInvalidString(req.Name) ||
		validation.IsMissing(req.Description) ||
		validation.IsInvalidString(req.Description) ||
		validation.IsMissing(req.StartAt) ||
		validation.IsInvalidString(req.StartAt) ||
		validation.IsMissing(req.EndAt) ||
		validation.IsInvalidString(req.EndAt) ||
		validation.IsMissing(req.MaxParticipants) ||
		validation.IsInvalidInteger(req.MaxParticipants) ||
		validation.IsMissing(req.MeetingURL) ||
		validation.IsInvalidString(req.MeetingURL) ||
		validation.IsInvalidURL(req.MeetingURL, "https") {
		log.Printf("WARN: course creation rejected, invalid fields")
		return nil, ErrInvalidFields
	}

	userID := validation.AsString(req.UserID)
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for course creation: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role != model.RoleCoach {
		return nil, ErrNotACoach
	}

	skillID := validation.AsString(req.SkillID)
	skill, err := s.skillRepo.FindByID(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("failed to find skill for course creation: %w", err)
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}

	now := time.Now()
	course := &model.Course{
		ID:              uuid.NewString(),
		UserID:          userID,
		SkillID:         skillID,
		Name:            validation.AsString(req.Name),
		Description:     validation.AsString(req.Description),
		StartAt:         validation.AsString(req.StartAt),
		EndAt:           validation.AsString(req.EndAt),
		MaxParticipants: validation.AsInt(req.MaxParticipants),
		MeetingURL:      validation.AsString(req.MeetingURL),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course in repository: %w", err)
	}
	return course, nil
}

// Update rewrites every editable field of an existing course. The owning
// user's coach role is not re-validated here, edits keep whatever owner
// the course was created with.
func (s *courseService) Update(ctx context.Context, courseID string, req model.UpdateCourseRequest) (*model.Course, error) {
	if validation.IsInvalidString(courseID) ||
		validation.IsMissing(req.SkillID) ||
		validation.IsInvalidString(req.SkillID) ||
		validation.IsMissing(req.Name) ||
		validation.IsInvalidString(req.Name) ||
		validation.IsMissing(req.Description) ||
		validation.IsInvalidString(req.Description) ||
		validation.IsMissing(req.StartAt) ||
		validation.IsInvalidString(req.StartAt) ||
		validation.IsMissing(req.EndAt) ||
		validation.IsInvalidString(req.EndAt) ||
		validation.IsMissing(req.MaxParticipants) ||
		validation.IsInvalidInteger(req.MaxParticipants) ||
		validation.IsMissing(req.MeetingURL) ||
		validation.IsInvalidString(req.MeetingURL) ||
		validation.IsInvalidURL(req.MeetingURL, "https") {
		log.Printf("WARN: course update rejected, invalid fields")
		return nil, ErrInvalidFields
	}

	existing, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course for update: %w", err)
	}
	if existing == nil {
		return nil, ErrCourseNotFound
	}

	existing.SkillID = validation.AsString(req.SkillID)
	existing.Name = validation.AsString(req.Name)
	existing.Description = validation.AsString(req.Description)
	existing.StartAt = validation.AsString(req.StartAt)
	existing.EndAt = validation.AsString(req.EndAt)
	existing.MaxParticipants = validation.AsInt(req.MaxParticipants)
	existing.MeetingURL = validation.AsString(req.MeetingURL)

	affected, err := s.courseRepo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update course in repository: %w", err)
	}
	if affected == 0 {
		return nil, ErrCourseUpdateFailed
	}

	updated, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload course after update: %w", err)
	}
	if updated == nil {
		return nil, ErrCourseNotFound
	}
	return updated, nil
}
