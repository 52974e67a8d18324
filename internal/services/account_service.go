package services

import (
	"context"
	"fmt"

	"petsy/internal/models"
	"petsy/internal/repositories"
)

// AccountService handles business logic for user registration.
type AccountService struct {
	userRepo repositories.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repositories.UserRepository) *AccountService {
	return &AccountService{
		userRepo: userRepo,
	}
}

// RegisterUser saves a new user. The password is stored exactly as
// supplied; login matches it by plain equality.
func (s *AccountService) RegisterUser(ctx context.Context, user *models.User) error {
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}
