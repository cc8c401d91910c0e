package service

import (
	"context"
	"fmt"
	"time"

	"coaching_marketplace/internal/model"
	"coaching_marketplace/internal/repository"
	"coaching_marketplace/internal/validation"

	"github.com/google/uuid"
)

// SkillService provides the skill workflows
type SkillService interface {
	List(ctx context.Context) ([]model.Skill, error)
	Create(ctx context.Context, req model.CreateSkillRequest) (*model.Skill, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type skillService struct {
	repo repository.SkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) List(ctx context.Context) ([]model.Skill, error) {
	skills, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// Create validates the payload, enforces name uniqueness and persists a
// new skill.
func (s *skillService) Create(ctx context.Context, req model.CreateSkillRequest) (*model.Skill, error) {
	if validation.IsMissing(req.Name) || validation.IsInvalidString(req.Name) {
		return nil, ErrInvalidFields
	}

	name := validation.AsString(req.Name)
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing skill: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateRecord
	}

	skill := &model.Skill{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill in repository: %w", err)
	}
	return skill, nil
}

// Delete removes a skill by ID, mapping a zero affected count to an
// invalid ID.
func (s *skillService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if validation.IsInvalidString(id) {
		return nil, ErrInvalidID
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete skill: %w", err)
	}
	if affected == 0 {
		return nil, ErrInvalidID
	}
	return &model.DeleteResult{Affected: affected}, nil
}
