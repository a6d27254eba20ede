// Package service implements the business logic layer.
package service

import (
	"context"
	"strings"

	"reelmates/internal/models"
	"reelmates/internal/repository"
	"reelmates/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const searchLimit = 20

// UserService provides account business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account with a hashed password.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials. The same error covers an unknown
// username and a wrong password.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid username or password")
	}
	return user, nil
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Search finds users whose username contains the query, case-insensitively.
func (s *UserService) Search(ctx context.Context, query string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query cannot be empty")
	}
	return s.userRepo.Search(ctx, query, searchLimit)
}

// DeleteAccount removes the caller's account together with their friendships
// and favorites. Users can only delete themselves.
func (s *UserService) DeleteAccount(ctx context.Context, callerID, targetID uint) error {
	if callerID != targetID {
		return models.NewForbiddenError("You can only delete your own account")
	}
	return s.userRepo.Delete(ctx, targetID)
}
