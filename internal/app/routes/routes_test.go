package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrew/workshophub/internal/app/controllers"
	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/app/repositories/memory"
	"github.com/forgecrew/workshophub/internal/app/routes"
	"github.com/forgecrew/workshophub/internal/app/services"
	"github.com/forgecrew/workshophub/internal/middleware"
	"github.com/forgecrew/workshophub/internal/pkg/auth"
)

type testEnv struct {
	router     *gin.Engine
	repos      *repositories.Repositories
	jwtService *auth.JWTService
}

// newTestEnv builds the full API over the in-memory backend, the same wiring
// bootstrap performs when no database is configured.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lgr := zerolog.Nop()
	store := memory.NewStore(filepath.Join(t.TempDir(), "fallback.json"), lgr)
	repos := memory.NewRepositories(store)

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenIssuer: "test"})

	authService := services.NewAuthService(repos.Users, jwtService, lgr)
	userService := services.NewUserService(repos.Users, lgr)
	teamService := services.NewTeamService(repos.Teams, lgr)
	projectService := services.NewProjectService(repos.Projects, repos.Settings, lgr)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAuthController(authService, userService, false),
		controllers.NewUserController(userService, authService),
		controllers.NewTeamController(teamService),
		controllers.NewProjectController(projectService),
		controllers.NewAttendanceController(repos.Attendance),
		controllers.NewGalleryController(repos.Gallery, repos.Settings),
		controllers.NewReportController(repos.Reports),
		controllers.NewCertificateController(repos.Certificates),
		controllers.NewSettingsController(repos.Settings),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &testEnv{router: router, repos: repos, jwtService: jwtService}
}

// tokenFor creates an account directly in the store and returns a valid token
func (e *testEnv) tokenFor(t *testing.T, userID, name string, role models.RoleType) string {
	t.Helper()

	hash, err := auth.HashPassword("pw12345678")
	require.NoError(t, err)
	user := &models.User{UserID: userID, Password: hash, Name: name, Role: role}
	require.NoError(t, e.repos.Users.Create(context.Background(), user))

	token, err := e.jwtService.GenerateToken(userID, name, string(role))
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func dataField(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestAdminCreatesUserWhoCanLogIn(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.tokenFor(t, "ADMIN-01", "Admin", models.RoleAdmin)

	created := env.do(http.MethodPost, "/api/v1/users", adminToken, gin.H{
		"userId":   "u1",
		"password": "pw12345678",
		"name":     "User One",
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	login := env.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"userId":   "U1",
		"password": "pw12345678",
	})
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())

	data := dataField(t, login)
	assert.Equal(t, "U1", data["userId"])
	assert.Equal(t, "participant", data["role"])
	assert.NotEmpty(t, data["token"])

	// The login response also sets the session cookie
	cookies := login.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == auth.TokenCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)

	wrong := env.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"userId":   "U1",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
}

func TestParticipantBlockedFromAdminEndpoints(t *testing.T) {
	env := newTestEnv(t)
	participantToken := env.tokenFor(t, "WS2024-001", "Ada", models.RoleParticipant)

	recorder := env.do(http.MethodGet, "/api/v1/attendance", participantToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var envelope struct {
		Data interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Data)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/v1/teams", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/v1/auth/me", "garbage-token", nil).Code)
}

func TestCookieAuthenticationWorks(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "WS2024-001", "Ada", models.RoleParticipant)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Equal(t, "WS2024-001", dataField(t, recorder)["userId"])
}

func TestProjectSubmissionRejectsNonGithubURL(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "WS2024-001", "Ada", models.RoleParticipant)

	recorder := env.do(http.MethodPost, "/api/v1/projects", token, gin.H{
		"domain":      "fintech",
		"title":       "Ledger",
		"description": "Bookkeeping",
		"githubUrl":   "https://gitlab.com/ada/ledger",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Nothing persisted for the caller
	mine := env.do(http.MethodGet, "/api/v1/projects/mine", token, nil)
	assert.Equal(t, http.StatusNotFound, mine.Code)
}

func TestProjectSubmitThenResubmit(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "WS2024-001", "Ada", models.RoleParticipant)

	first := env.do(http.MethodPost, "/api/v1/projects", token, gin.H{
		"domain":      "fintech",
		"title":       "Ledger",
		"description": "Bookkeeping",
		"githubUrl":   "https://github.com/ada/ledger",
	})
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := env.do(http.MethodPost, "/api/v1/projects", token, gin.H{
		"domain":      "fintech",
		"title":       "Ledger v2",
		"description": "Bookkeeping, now with reports",
		"githubUrl":   "https://github.com/ada/ledger",
		"status":      "submitted",
	})
	require.Equal(t, http.StatusOK, second.Code, second.Body.String())

	data := dataField(t, second)
	assert.Equal(t, "Ledger v2", data["title"])
	assert.Equal(t, "submitted", data["status"])
}

func TestAttendanceRoundTripInFallbackMode(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.tokenFor(t, "ADMIN-01", "Admin", models.RoleAdmin)

	created := env.do(http.MethodPost, "/api/v1/attendance", adminToken, gin.H{
		"participantName": "Ada Lovelace",
		"studentId":       "WS2024-001",
		"firstHalf":       true,
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	list := env.do(http.MethodGet, "/api/v1/attendance", adminToken, nil)
	require.Equal(t, http.StatusOK, list.Code)

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Ada Lovelace", envelope.Data[0]["participantName"])
	assert.Equal(t, true, envelope.Data[0]["firstHalf"])
}

func TestPublicGalleryGating(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.tokenFor(t, "ADMIN-01", "Admin", models.RoleAdmin)

	created := env.do(http.MethodPost, "/api/v1/gallery", adminToken, gin.H{
		"filename":      "group.jpg",
		"url":           "/uploads/group.jpg",
		"publicVisible": true,
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	listItems := func() []map[string]interface{} {
		recorder := env.do(http.MethodGet, "/api/v1/gallery/public", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		var envelope struct {
			Data []map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		return envelope.Data
	}

	// Gallery is private by default: nothing leaks, even visible items
	assert.Empty(t, listItems())

	settings := env.do(http.MethodPut, "/api/v1/settings", adminToken, gin.H{"galleryPublic": true})
	require.Equal(t, http.StatusOK, settings.Code)

	items := listItems()
	require.Len(t, items, 1)
	assert.Equal(t, "group.jpg", items[0]["filename"])

	// Toggling the item off hides it again
	id := items[0]["id"].(string)
	toggle := env.do(http.MethodPut, "/api/v1/gallery/"+id+"/visibility", adminToken, nil)
	require.Equal(t, http.StatusOK, toggle.Code)
	assert.Empty(t, listItems())
}

func TestSubmissionsClosedReturnsForbidden(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.tokenFor(t, "ADMIN-01", "Admin", models.RoleAdmin)
	participantToken := env.tokenFor(t, "WS2024-001", "Ada", models.RoleParticipant)

	settings := env.do(http.MethodPut, "/api/v1/settings", adminToken, gin.H{"submissionsEnabled": false})
	require.Equal(t, http.StatusOK, settings.Code)

	recorder := env.do(http.MethodPost, "/api/v1/projects", participantToken, gin.H{
		"domain":      "fintech",
		"title":       "Ledger",
		"description": "Bookkeeping",
		"githubUrl":   "https://github.com/ada/ledger",
	})
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAdminReviewFlow(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.tokenFor(t, "ADMIN-01", "Admin", models.RoleAdmin)
	participantToken := env.tokenFor(t, "WS2024-001", "Ada", models.RoleParticipant)

	submitted := env.do(http.MethodPost, "/api/v1/projects", participantToken, gin.H{
		"domain":      "fintech",
		"title":       "Ledger",
		"description": "Bookkeeping",
		"githubUrl":   "https://github.com/ada/ledger",
		"status":      "submitted",
	})
	require.Equal(t, http.StatusCreated, submitted.Code)
	projectID := dataField(t, submitted)["id"].(string)

	// Participants cannot review
	denied := env.do(http.MethodPut, "/api/v1/projects/"+projectID+"/review", participantToken, gin.H{"rating": 5})
	assert.Equal(t, http.StatusForbidden, denied.Code)

	review := env.do(http.MethodPut, "/api/v1/projects/"+projectID+"/review", adminToken, gin.H{
		"rating":        4,
		"score":         88,
		"adminFeedback": "Clean data model",
	})
	require.Equal(t, http.StatusOK, review.Code, review.Body.String())

	mine := env.do(http.MethodGet, "/api/v1/projects/mine", participantToken, nil)
	require.Equal(t, http.StatusOK, mine.Code)
	data := dataField(t, mine)
	assert.Equal(t, float64(4), data["rating"])
	assert.Equal(t, float64(88), data["score"])
	assert.Equal(t, "Clean data model", data["adminFeedback"])
}
