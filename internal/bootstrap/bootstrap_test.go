package bootstrap

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrew/workshophub/internal/db"
)

func TestRunMigrationsRequiresMigrationsDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// The directory check runs before any query, so a pool is not needed.
	err = RunMigrations(&db.PostgresDB{}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}
