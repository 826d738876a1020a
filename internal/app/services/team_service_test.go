package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/app/repositories/memory"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

func newTeamService(t *testing.T) (*TeamService, *repositories.Repositories) {
	t.Helper()
	store := memory.NewStore(filepath.Join(t.TempDir(), "fallback.json"), zerolog.Nop())
	repos := memory.NewRepositories(store)
	return NewTeamService(repos.Teams, zerolog.Nop()), repos
}

func TestCreateTeamRejectsSecondMembership(t *testing.T) {
	service, _ := newTeamService(t)
	ctx := context.Background()

	_, err := service.CreateTeam(ctx, "WS2024-001", "Ada", &dto.CreateTeamRequest{
		TeamName: "Bit Benders",
		Domain:   "fintech",
		Members:  []dto.TeamMemberPayload{{Name: "Grace", UserID: "WS2024-002"}},
	})
	require.NoError(t, err)

	// The leader already has a team
	_, err = service.CreateTeam(ctx, "WS2024-001", "Ada", &dto.CreateTeamRequest{
		TeamName: "Second Attempt",
		Domain:   "healthtech",
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyInTeam)

	// A listed member already has a team
	_, err = service.CreateTeam(ctx, "WS2024-003", "Alan", &dto.CreateTeamRequest{
		TeamName: "Poachers",
		Domain:   "edtech",
		Members:  []dto.TeamMemberPayload{{Name: "Grace", UserID: "WS2024-002"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyInTeam)
}

func TestCreateTeamDuplicateName(t *testing.T) {
	service, _ := newTeamService(t)
	ctx := context.Background()

	_, err := service.CreateTeam(ctx, "WS2024-001", "Ada", &dto.CreateTeamRequest{TeamName: "Bit Benders", Domain: "fintech"})
	require.NoError(t, err)

	_, err = service.CreateTeam(ctx, "WS2024-002", "Grace", &dto.CreateTeamRequest{TeamName: "Bit Benders", Domain: "edtech"})
	assert.ErrorIs(t, err, apperrors.ErrTeamAlreadyExists)
}

func TestUpdateTeamLeaderOrAdminOnly(t *testing.T) {
	service, _ := newTeamService(t)
	ctx := context.Background()

	team, err := service.CreateTeam(ctx, "WS2024-001", "Ada", &dto.CreateTeamRequest{TeamName: "Bit Benders", Domain: "fintech"})
	require.NoError(t, err)

	newName := "Byte Benders"

	_, err = service.UpdateTeam(ctx, team.ID, "WS2024-002", false, &dto.UpdateTeamRequest{TeamName: &newName})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := service.UpdateTeam(ctx, team.ID, "WS2024-001", false, &dto.UpdateTeamRequest{TeamName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Byte Benders", updated.TeamName)

	// Admin may delete a team they do not lead
	require.NoError(t, service.DeleteTeam(ctx, team.ID, "ADMIN-01", true))
}
