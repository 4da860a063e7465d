package userservice

import (
	"context"
	"fmt"

	"github.com/haguru/oak/internal/interfaces"
	"github.com/haguru/oak/internal/models"
	"github.com/haguru/oak/pkg/helper"

	"golang.org/x/crypto/bcrypt"
)

// UserService exposes the read-only user operations over the repository
// port. No write path exists; users come from the seed step.
type UserService struct {
	UserRepo interfaces.UserRepository
	Logger   interfaces.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(repo interfaces.UserRepository, logger interfaces.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		Logger:   logger,
	}
}

// ListUsers returns the full users table in insertion order.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName)

	users, err := s.UserRepo.FindAll(ctx)
	if err != nil {
		s.Logger.Error(ErrListingUsers, "func", funcName, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrListingUsers, err)
	}

	s.Logger.Debug("Exiting function", "func", funcName, "users", len(users))
	return users, nil
}

// AuthenticateUser verifies a user's credentials. Disabled users cannot
// authenticate.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (bool, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "user", username, "error", err)
		return false, fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}
	if user == nil {
		s.Logger.Warn(ErrUserNotFound, "func", funcName, "user", username)
		return false, fmt.Errorf("%s: %s", ErrUserNotFound, username)
	}
	if !user.Enabled {
		s.Logger.Warn(ErrUserDisabled, "func", funcName, "user", username)
		return false, fmt.Errorf("%s: %s", ErrUserDisabled, username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.Logger.Warn(ErrInvalidPassword, "func", funcName, "user", username)
		return false, fmt.Errorf("%s: %w", ErrInvalidPassword, err)
	}

	s.Logger.Info("User authenticated successfully", "func", funcName, "user", username)
	return true, nil
}
