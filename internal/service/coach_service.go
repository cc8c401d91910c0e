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
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyCoach     = errors.New("user is already a coach")
	ErrRoleUpdateFailed = errors.New("failed to update user role")
)

// CoachService provides the coach promotion workflow
type CoachService interface {
	Promote(ctx context.Context, userID string, req model.PromoteCoachRequest) (*model.PromotionResult, error)
}

type coachService struct {
	userRepo  repository.UserRepository
	coachRepo repository.CoachRepository
}

// NewCoachService creates a new CoachService
func NewCoachService(userRepo repository.UserRepository, coachRepo repository.CoachRepository) CoachService {
	return &coachService{userRepo: userRepo, coachRepo: coachRepo}
}

// Promote flips a user's role from "user" to "coach" exactly once and
// creates the linked coach profile. The two field checks run in order;
// they log differently but both reject with the same message.
func (s *coachService) Promote(ctx context.Context, userID string, req model.PromoteCoachRequest) (*model.PromotionResult, error) {
	if validation.IsMissing(req.ExperienceYears) ||
		validation.IsInvalidInteger(req.ExperienceYears) ||
		validation.IsMissing(req.Description) ||
		validation.IsInvalidString(req.Description) {
		log.Printf("WARN: promotion rejected, invalid coach fields")
		return nil, ErrInvalidFields
	}
	if validation.IsMissing(req.ProfileImageURL) ||
		validation.IsInvalidString(req.ProfileImageURL) ||
		validation.IsInvalidURL(req.ProfileImageURL, "https") {
		log.Printf("WARN: promotion rejected, invalid profile image url")
		return nil, ErrInvalidFields
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for promotion: %w", err)
	}
	if user == nil {
		log.Printf("WARN: promotion rejected, user not found")
		return nil, ErrUserNotFound
	}
	if user.Role == model.RoleCoach {
		log.Printf("WARN: promotion rejected, user is already a coach")
		return nil, ErrAlreadyCoach
	}

	affected, err := s.userRepo.UpdateRole(ctx, userID, model.RoleCoach)
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	if affected == 0 {
		log.Printf("ERROR: promotion role update affected no rows, user ID: %s", userID)
		return nil, ErrRoleUpdateFailed
	}

	now := time.Now()
	coach := &model.Coach{
		ID:              uuid.NewString(),
		UserID:          userID,
		ExperienceYears: validation.AsInt(req.ExperienceYears),
		Description:     validation.AsString(req.Description),
		ProfileImageURL: validation.AsString(req.ProfileImageURL),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.coachRepo.Create(ctx, coach); err != nil {
		return nil, fmt.Errorf("failed to create coach in repository: %w", err)
	}

	summary := model.UserSummary{Name: user.Name, Role: model.RoleCoach}
	if updated, err := s.userRepo.FindByID(ctx, userID); err == nil && updated != nil {
		summary = model.UserSummary{Name: updated.Name, Role: updated.Role}
	}

	return &model.PromotionResult{User: summary, Coach: coach}, nil
}
