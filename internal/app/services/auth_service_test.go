package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/app/repositories/memory"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
	"github.com/forgecrew/workshophub/internal/pkg/auth"
)

func newTestDeps(t *testing.T) (*repositories.Repositories, *auth.JWTService) {
	t.Helper()
	store := memory.NewStore(filepath.Join(t.TempDir(), "fallback.json"), zerolog.Nop())
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenIssuer: "test"})
	return memory.NewRepositories(store), jwtService
}

func createAccount(t *testing.T, repos *repositories.Repositories, userID, password string, needsSetup bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		UserID:             userID,
		Password:           hash,
		Name:               "Test User",
		Role:               models.RoleParticipant,
		NeedsPasswordSetup: needsSetup,
	}
	require.NoError(t, repos.Users.Create(context.Background(), user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	repos, jwtService := newTestDeps(t)
	service := NewAuthService(repos.Users, jwtService, zerolog.Nop())
	createAccount(t, repos, "WS2024-001", "pw12345678", false)

	// Login normalizes case and whitespace
	response, err := service.Login(context.Background(), " ws2024-001 ", "pw12345678")
	require.NoError(t, err)
	assert.Equal(t, "WS2024-001", response.UserID)
	assert.Equal(t, "participant", response.Role)
	assert.False(t, response.NeedsPasswordSetup)

	claims, err := jwtService.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "WS2024-001", claims.UserID)
	assert.Equal(t, "participant", claims.Role)
}

func TestLoginCollapsesFailureModes(t *testing.T) {
	repos, jwtService := newTestDeps(t)
	service := NewAuthService(repos.Users, jwtService, zerolog.Nop())
	createAccount(t, repos, "WS2024-001", "pw12345678", false)

	// Unknown user and wrong password return the same error
	_, err := service.Login(context.Background(), "WS2024-999", "pw12345678")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), "WS2024-001", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	repos, jwtService := newTestDeps(t)
	service := NewAuthService(repos.Users, jwtService, zerolog.Nop())
	createAccount(t, repos, "WS2024-001", "old-password", false)

	err := service.ChangePassword(context.Background(), "WS2024-001", "wrong", "new-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = service.ChangePassword(context.Background(), "WS2024-001", "old-password", "short")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	require.NoError(t, service.ChangePassword(context.Background(), "WS2024-001", "old-password", "new-password"))

	_, err = service.Login(context.Background(), "WS2024-001", "new-password")
	assert.NoError(t, err)
}

func TestSetupPasswordOnlyOnce(t *testing.T) {
	repos, jwtService := newTestDeps(t)
	service := NewAuthService(repos.Users, jwtService, zerolog.Nop())
	createAccount(t, repos, "WS2024-001", "temp-password", true)

	require.NoError(t, service.SetupPassword(context.Background(), "WS2024-001", "chosen-password"))

	user, err := repos.Users.GetByUserID(context.Background(), "WS2024-001")
	require.NoError(t, err)
	assert.False(t, user.NeedsPasswordSetup)

	// The flag transitions exactly once
	err = service.SetupPassword(context.Background(), "WS2024-001", "another-password")
	assert.ErrorIs(t, err, apperrors.ErrPasswordSetupDone)
}

func TestAdminResetPassword(t *testing.T) {
	repos, jwtService := newTestDeps(t)
	service := NewAuthService(repos.Users, jwtService, zerolog.Nop())
	user := createAccount(t, repos, "WS2024-001", "forgotten", false)

	err := service.AdminResetPassword(context.Background(), user.ID, "short77")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	require.NoError(t, service.AdminResetPassword(context.Background(), user.ID, "reset-password"))

	_, err = service.Login(context.Background(), "WS2024-001", "reset-password")
	assert.NoError(t, err)
}
