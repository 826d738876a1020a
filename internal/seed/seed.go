package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
	"github.com/forgecrew/workshophub/internal/pkg/auth"
)

// TempPassword is the shared temporary password for seeded accounts. Every
// seeded account carries needsPasswordSetup=true and must replace it on
// first login.
const TempPassword = "workshop2024"

type seedAccount struct {
	UserID string
	Name   string
	Email  string
	Role   models.RoleType
}

// The fixed accounts every deployment starts with. Admins run the event;
// the participant roster mirrors the registration sheet.
var defaultAccounts = []seedAccount{
	{UserID: "ADMIN-01", Name: "Workshop Admin", Email: "admin@workshophub.local", Role: models.RoleAdmin},
	{UserID: "ADMIN-02", Name: "Workshop Co-Admin", Email: "coadmin@workshophub.local", Role: models.RoleAdmin},
	{UserID: "WS2024-001", Name: "Participant One", Role: models.RoleParticipant},
	{UserID: "WS2024-002", Name: "Participant Two", Role: models.RoleParticipant},
	{UserID: "WS2024-003", Name: "Participant Three", Role: models.RoleParticipant},
}

// EnsureDefaults idempotently creates the fixed accounts and the default
// settings record. It works over the repository interfaces, so it runs the
// same way against Postgres and the fallback store. Existing accounts are
// left untouched; seeding never resets a password.
func EnsureDefaults(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default accounts and settings...")
	var finalErr error

	hash, err := auth.HashPassword(TempPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for _, account := range defaultAccounts {
		_, err := repos.Users.GetByUserID(ctx, account.UserID)
		if err == nil {
			continue // already present
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			lgr.Error().Err(err).Str("userId", account.UserID).Msg("Error checking seed account")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &models.User{
			UserID:             account.UserID,
			Password:           hash,
			Name:               account.Name,
			Email:              account.Email,
			Role:               account.Role,
			NeedsPasswordSetup: true,
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			// A concurrent seeder may have won the race; duplicates are fine
			if errors.Is(err, apperrors.ErrUserIDExists) {
				continue
			}
			lgr.Error().Err(err).Str("userId", account.UserID).Msg("Error creating seed account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("userId", account.UserID).Str("role", string(account.Role)).Msg("Seed account created")
	}

	// Settings.Get creates the default record when none exists
	if _, err := repos.Settings.Get(ctx); err != nil {
		lgr.Error().Err(err).Msg("Error ensuring default settings")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}
