package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
	"github.com/forgecrew/workshophub/internal/pkg/auth"
	"github.com/forgecrew/workshophub/internal/pkg/validation"
)

// AuthService handles login and the password lifecycle
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user and returns a signed token. User-not-found and
// wrong-password are deliberately collapsed into one generic error.
func (s *AuthService) Login(ctx context.Context, userID, password string) (*dto.LoginResponse, error) {
	normalized := validation.NormalizeUserID(userID)
	if normalized == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUserID(ctx, normalized)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Warn().Str("userId", normalized).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.UserID, user.Name, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		Token:              token,
		UserID:             user.UserID,
		Name:               user.Name,
		Role:               string(user.Role),
		NeedsPasswordSetup: user.NeedsPasswordSetup,
	}, nil
}

// ChangePassword verifies the old password before storing the new one and
// clears the first-login setup flag.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if len(newPassword) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}

	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, oldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hash, false)
}

// SetupPassword is the first-login flow for seeded accounts. It requires no
// old password but only works while the setup flag is still set.
func (s *AuthService) SetupPassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}

	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.NeedsPasswordSetup {
		return apperrors.ErrPasswordSetupDone
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hash, false)
}

// AdminResetPassword overwrites a user's password without the old one.
func (s *AuthService) AdminResetPassword(ctx context.Context, id, newPassword string) error {
	if len(newPassword) < validation.AdminPasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrInvalidPassword, validation.AdminPasswordMinLength)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	s.logger.Info().Str("userId", user.UserID).Msg("Password reset by admin")
	return s.userRepo.UpdatePassword(ctx, user.ID, hash, false)
}
