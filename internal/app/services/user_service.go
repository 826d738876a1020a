package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
	"github.com/forgecrew/workshophub/internal/pkg/auth"
	"github.com/forgecrew/workshophub/internal/pkg/validation"
)

// UserService handles admin-side user management
type UserService struct {
	userRepo repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser creates a participant (or admin) account. The login identifier
// is normalized to uppercase before the uniqueness check.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	userID := validation.NormalizeUserID(req.UserID)
	if !validation.IsValidUserID(userID) {
		return nil, fmt.Errorf("%w: user ID must be 2-32 letters, digits or hyphens",
			apperrors.ErrValidationFailed)
	}

	if len(req.Password) < validation.AdminPasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrInvalidPassword, validation.AdminPasswordMinLength)
	}

	role := models.RoleParticipant
	if req.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		UserID:             userID,
		Password:           hash,
		Name:               req.Name,
		Email:              req.Email,
		Role:               role,
		NeedsPasswordSetup: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", user.UserID).Str("role", string(user.Role)).Msg("User created")
	return user, nil
}

// GetAllUsers lists every account
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetUserByID retrieves an account by its opaque id
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByUserID retrieves an account by its login identifier
func (s *UserService) GetUserByUserID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByUserID(ctx, validation.NormalizeUserID(userID))
}

// DeleteUser removes an account
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("User deleted")
	return nil
}
