package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/contact-web/internal/domain/users"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"

	"github.com/google/uuid"
)

// userService implements the UserService interface on top of a UserRepository
type userService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(userRepo users.UserRepository, logger logger.Logger) (users.UserService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// Create stores a new user with a generated ID
func (s *userService) Create(ctx context.Context, username, email string) (*users.User, error) {
	user := &users.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// List returns users matching query
func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	list, err := s.userRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}

// GetByID returns the user with the given ID
func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// DeleteByID removes the user with the given ID
func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
