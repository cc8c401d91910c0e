package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coaching_marketplace/internal/model"
	"coaching_marketplace/internal/repository"
	"coaching_marketplace/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrInvalidFields   = errors.New("invalid or missing fields")
	ErrDuplicateRecord = errors.New("data already exists")
	ErrInvalidID       = errors.New("invalid ID")
)

// CreditPackageService provides the credit package workflows
type CreditPackageService interface {
	List(ctx context.Context) ([]model.CreditPackage, error)
	Create(ctx context.Context, req model.CreateCreditPackageRequest) (*model.CreditPackage, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type creditPackageService struct {
	repo repository.CreditPackageRepository
}

// NewCreditPackageService creates a new CreditPackageService
func NewCreditPackageService(repo repository.CreditPackageRepository) CreditPackageService {
	return &creditPackageService{repo: repo}
}

func (s *creditPackageService) List(ctx context.Context) ([]model.CreditPackage, error) {
	packages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit packages: %w", err)
	}
	return packages, nil
}

// Create validates the payload, enforces name uniqueness and persists a
// new credit package. The uniqueness check is check-then-act: two
// concurrent creates with the same name can both pass it.
func (s *creditPackageService) Create(ctx context.Context, req model.CreateCreditPackageRequest) (*model.CreditPackage, error) {
	if validation.IsMissing(req.Name) ||
		validation.IsMissing(req.CreditAmount) ||
		validation.IsMissing(req.Price) ||
		validation.IsInvalidString(req.Name) ||
		validation.IsInvalidInteger(req.CreditAmount) ||
		validation.IsInvalidInteger(req.Price) {
		return nil, ErrInvalidFields
	}

	name := validation.AsString(req.Name)
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing credit package: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateRecord
	}

	pkg := &model.CreditPackage{
		ID:           uuid.NewString(),
		Name:         name,
		CreditAmount: validation.AsInt(req.CreditAmount),
		Price:        validation.AsInt(req.Price),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create credit package in repository: %w", err)
	}
	return pkg, nil
}

// Delete removes a credit package by ID. A delete that touches zero rows
// is reported as an invalid ID rather than a separate not-found case.
func (s *creditPackageService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if validation.IsInvalidString(id) {
		return nil, ErrInvalidID
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete credit package: %w", err)
	}
	if affected == 0 {
		return nil, ErrInvalidID
	}
	return &model.DeleteResult{Affected: affected}, nil
}
