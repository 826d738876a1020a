package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/app/repositories/memory"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

func newProjectService(t *testing.T) (*ProjectService, *repositories.Repositories) {
	t.Helper()
	store := memory.NewStore(filepath.Join(t.TempDir(), "fallback.json"), zerolog.Nop())
	repos := memory.NewRepositories(store)
	return NewProjectService(repos.Projects, repos.Settings, zerolog.Nop()), repos
}

func validSubmission() *dto.SubmitProjectRequest {
	return &dto.SubmitProjectRequest{
		Domain:      "fintech",
		Title:       "Ledger",
		Description: "Double-entry bookkeeping for teams",
		GithubURL:   "https://github.com/ada/ledger",
		Status:      "submitted",
	}
}

func TestSubmitRejectsNonGithubURL(t *testing.T) {
	service, repos := newProjectService(t)

	req := validSubmission()
	req.GithubURL = "https://gitlab.com/ada/ledger"

	_, _, err := service.Submit(context.Background(), "WS2024-001", "Ada", req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidGithubURL)

	// Nothing was persisted
	all, err := repos.Projects.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSubmitBlockedWhenSubmissionsClosed(t *testing.T) {
	service, repos := newProjectService(t)

	closed := false
	_, err := repos.Settings.Update(context.Background(), repositories.SettingsUpdate{SubmissionsEnabled: &closed})
	require.NoError(t, err)

	_, _, err = service.Submit(context.Background(), "WS2024-001", "Ada", validSubmission())
	assert.ErrorIs(t, err, apperrors.ErrSubmissionsClosed)
}

func TestSubmitDefaultsToDraft(t *testing.T) {
	service, _ := newProjectService(t)

	req := validSubmission()
	req.Status = ""

	project, created, err := service.Submit(context.Background(), "WS2024-001", "Ada", req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.ProjectStatusDraft, project.Status)
	assert.Nil(t, project.SubmittedAt)
}

func TestDeleteRequiresOwnerOrAdmin(t *testing.T) {
	service, _ := newProjectService(t)
	ctx := context.Background()

	project, _, err := service.Submit(ctx, "WS2024-001", "Ada", validSubmission())
	require.NoError(t, err)

	err = service.Delete(ctx, project.ID, "WS2024-002", false)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Admin may delete someone else's project
	require.NoError(t, service.Delete(ctx, project.ID, "ADMIN-01", true))

	_, err = service.GetProjectByUserID(ctx, "WS2024-001")
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}
