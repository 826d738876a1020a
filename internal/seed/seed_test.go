package seed

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
	"github.com/forgecrew/workshophub/internal/pkg/auth"
)

func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	store := memory.NewStore(filepath.Join(t.TempDir(), "fallback.json"), zerolog.Nop())
	return memory.NewRepositories(store)
}

func TestEnsureDefaultsCreatesAccountsAndSettings(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, EnsureDefaults(ctx, repos, zerolog.Nop()))

	admin, err := repos.Users.GetByUserID(ctx, "ADMIN-01")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.NeedsPasswordSetup)
	assert.True(t, auth.CheckPassword(admin.Password, TempPassword))

	settings, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.True(t, settings.SubmissionsEnabled)
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, EnsureDefaults(ctx, repos, zerolog.Nop()))
	require.NoError(t, EnsureDefaults(ctx, repos, zerolog.Nop()))

	users, err := repos.Users.GetAll(ctx)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, u := range users {
		counts[u.UserID]++
	}
	for userID, n := range counts {
		assert.Equal(t, 1, n, userID)
	}
	assert.Equal(t, len(users), len(counts))
}

func TestEnsureDefaultsKeepsExistingPassword(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, EnsureDefaults(ctx, repos, zerolog.Nop()))

	admin, err := repos.Users.GetByUserID(ctx, "ADMIN-01")
	require.NoError(t, err)

	hash, err := auth.HashPassword("my-new-password")
	require.NoError(t, err)
	require.NoError(t, repos.Users.UpdatePassword(ctx, admin.ID, hash, false))

	// A second seed run must not reset the changed password
	require.NoError(t, EnsureDefaults(ctx, repos, zerolog.Nop()))

	admin, err = repos.Users.GetByUserID(ctx, "ADMIN-01")
	require.NoError(t, err)
	assert.False(t, admin.NeedsPasswordSetup)
	assert.True(t, auth.CheckPassword(admin.Password, "my-new-password"))
}
