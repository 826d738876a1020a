package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
	"github.com/forgecrew/workshophub/internal/pkg/auth"
)

func newTestRepos(t *testing.T) (*repositories.Repositories, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fallback.json")
	store := NewStore(path, zerolog.Nop())
	return NewRepositories(store), path
}

func TestStorePersistsAndRehydrates(t *testing.T) {
	repos, path := newTestRepos(t)
	ctx := context.Background()

	record := &models.Attendance{
		ParticipantName: "Ada Lovelace",
		StudentID:       "WS2024-001",
		FirstHalf:       true,
	}
	require.NoError(t, repos.Attendance.Create(ctx, record))
	require.NotEmpty(t, record.ID)

	// Every mutation overwrites the whole file
	_, err := os.Stat(path)
	require.NoError(t, err)

	// A fresh store hydrates from the same file
	rehydrated := NewRepositories(NewStore(path, zerolog.Nop()))
	records, err := rehydrated.Attendance.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
	assert.Equal(t, "Ada Lovelace", records[0].ParticipantName)
	assert.True(t, records[0].FirstHalf)
	assert.False(t, records[0].SecondHalf)
}

func TestStoreSurvivesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repos := NewRepositories(NewStore(path, zerolog.Nop()))
	users, err := repos.Users.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserPasswordHashSurvivesRestart(t *testing.T) {
	repos, path := newTestRepos(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("pw12345678")
	require.NoError(t, err)

	user := &models.User{UserID: "WS2024-001", Name: "Ada", Password: hash, Role: models.RoleParticipant}
	require.NoError(t, repos.Users.Create(ctx, user))

	// The API model hides the hash from JSON; the fallback file must not
	rehydrated := NewRepositories(NewStore(path, zerolog.Nop()))
	loaded, err := rehydrated.Users.GetByUserID(ctx, "WS2024-001")
	require.NoError(t, err)
	assert.Equal(t, hash, loaded.Password)
	assert.True(t, auth.CheckPassword(loaded.Password, "pw12345678"))
}

func TestUserRepositoryUniqueUserID(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	user := &models.User{UserID: "WS2024-001", Name: "Ada", Password: "hash", Role: models.RoleParticipant}
	require.NoError(t, repos.Users.Create(ctx, user))

	dup := &models.User{UserID: "WS2024-001", Name: "Impostor", Password: "hash", Role: models.RoleParticipant}
	err := repos.Users.Create(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrUserIDExists)

	_, err = repos.Users.GetByUserID(ctx, "WS2024-999")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestProjectUpsertIdempotent(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	first := repositories.ProjectSubmission{
		UserID:    "WS2024-001",
		UserName:  "Ada",
		Title:     "First title",
		GithubURL: "https://github.com/ada/analytical-engine",
		Status:    models.ProjectStatusDraft,
	}
	created, wasNew, err := repos.Projects.Upsert(ctx, first)
	require.NoError(t, err)
	assert.True(t, wasNew)
	assert.Nil(t, created.SubmittedAt)

	second := first
	second.Title = "Final title"
	second.Status = models.ProjectStatusSubmitted
	updated, wasNew, err := repos.Projects.Upsert(ctx, second)
	require.NoError(t, err)
	assert.False(t, wasNew)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Final title", updated.Title)
	require.NotNil(t, updated.SubmittedAt)

	// Exactly one record per user, with the second call's fields
	all, err := repos.Projects.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Final title", all[0].Title)
}

func TestProjectResubmissionKeepsReviewAndSubmittedAt(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	sub := repositories.ProjectSubmission{
		UserID:    "WS2024-001",
		Title:     "Entry",
		GithubURL: "https://github.com/ada/engine",
		Status:    models.ProjectStatusSubmitted,
	}
	project, _, err := repos.Projects.Upsert(ctx, sub)
	require.NoError(t, err)
	require.NotNil(t, project.SubmittedAt)
	submittedAt := *project.SubmittedAt

	rating, score, feedback := 4, 87, "Solid work"
	_, err = repos.Projects.UpdateReview(ctx, project.ID, repositories.ProjectReview{
		Rating:        &rating,
		Score:         &score,
		AdminFeedback: &feedback,
	})
	require.NoError(t, err)

	// Owner pulls the entry back to draft; review fields and the original
	// submission timestamp must survive
	sub.Status = models.ProjectStatusDraft
	reverted, _, err := repos.Projects.Upsert(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusDraft, reverted.Status)
	assert.Equal(t, 4, reverted.Rating)
	assert.Equal(t, 87, reverted.Score)
	assert.Equal(t, "Solid work", reverted.AdminFeedback)
	require.NotNil(t, reverted.SubmittedAt)
	assert.Equal(t, submittedAt.Unix(), reverted.SubmittedAt.Unix())
}

func TestGalleryVisibilityRoundTrip(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	item := &models.GalleryItem{Filename: "group.jpg", URL: "/uploads/group.jpg", Type: models.GalleryItemImage}
	require.NoError(t, repos.Gallery.Create(ctx, item))
	assert.False(t, item.PublicVisible)

	visible := true
	updated, err := repos.Gallery.Update(ctx, item.ID, repositories.GalleryItemUpdate{PublicVisible: &visible})
	require.NoError(t, err)
	assert.True(t, updated.PublicVisible)
	assert.Equal(t, "group.jpg", updated.Filename)

	hidden := false
	updated, err = repos.Gallery.Update(ctx, item.ID, repositories.GalleryItemUpdate{PublicVisible: &hidden})
	require.NoError(t, err)
	assert.False(t, updated.PublicVisible)
}

func TestSettingsLazyCreateAndPartialUpdate(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	settings, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, settings.ID)
	assert.True(t, settings.SubmissionsEnabled)
	assert.False(t, settings.GalleryPublic)

	public := true
	updated, err := repos.Settings.Update(ctx, repositories.SettingsUpdate{GalleryPublic: &public})
	require.NoError(t, err)
	assert.True(t, updated.GalleryPublic)
	// Untouched fields keep their values
	assert.True(t, updated.SubmissionsEnabled)
}

func TestTeamUpdateAllowlist(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	team := &models.Team{
		TeamName:   "Bit Benders",
		LeaderID:   "WS2024-001",
		LeaderName: "Ada",
		Domain:     "fintech",
		Members:    []models.TeamMember{{Name: "Grace", UserID: "WS2024-002"}},
	}
	require.NoError(t, repos.Teams.Create(ctx, team))

	newName := "Byte Benders"
	updated, err := repos.Teams.Update(ctx, team.ID, repositories.TeamUpdate{TeamName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Byte Benders", updated.TeamName)
	// Leader and roster are untouched by a name-only update
	assert.Equal(t, "WS2024-001", updated.LeaderID)
	require.Len(t, updated.Members, 1)
	assert.Equal(t, "WS2024-002", updated.Members[0].UserID)
}

func TestCertificatesByStudentID(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	mine := &models.Certificate{StudentName: "Ada", StudentID: "WS2024-001", CertificateURL: "/certs/a.pdf"}
	other := &models.Certificate{StudentName: "Grace", StudentID: "WS2024-002", CertificateURL: "/certs/b.pdf"}
	require.NoError(t, repos.Certificates.Create(ctx, mine))
	require.NoError(t, repos.Certificates.Create(ctx, other))

	certs, err := repos.Certificates.GetByStudentID(ctx, "WS2024-001")
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, mine.ID, certs[0].ID)
}
