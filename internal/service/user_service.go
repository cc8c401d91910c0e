package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coaching_marketplace/internal/model"
	"coaching_marketplace/internal/repository"
	"coaching_marketplace/internal/utils"
	"coaching_marketplace/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrInvalidPassword = errors.New("password does not meet requirements")
	ErrEmailTaken      = errors.New("email already in use")
)

// UserService provides the signup workflow
type UserService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.PublicUser, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Signup validates the payload, enforces the password policy and email
// uniqueness, then creates the user with role "user". The response never
// contains the email, the password hash or the role.
func (s *userService) Signup(ctx context.Context, req model.SignupRequest) (*model.PublicUser, error) {
	if validation.IsMissing(req.Name) ||
		validation.IsMissing(req.Email) ||
		validation.IsMissing(req.Password) ||
		validation.IsInvalidString(req.Name) ||
		validation.IsInvalidString(req.Email) ||
		validation.IsInvalidString(req.Password) {
		return nil, ErrInvalidFields
	}

	password := validation.AsString(req.Password)
	if !utils.IsValidPassword(password) {
		log.Printf("WARN: signup rejected, password does not meet requirements")
		return nil, ErrInvalidPassword
	}

	email := validation.AsString(req.Email)
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		log.Printf("WARN: signup rejected, email already in use")
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.NewString(),
		Name:         validation.AsString(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	log.Printf("INFO: new user created, ID: %s", user.ID)
	return &model.PublicUser{ID: user.ID, Name: user.Name}, nil
}
