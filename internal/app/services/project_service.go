package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
	"github.com/forgecrew/workshophub/internal/pkg/validation"
)

// ProjectService handles project submission and review
type ProjectService struct {
	projectRepo  repositories.ProjectRepository
	settingsRepo repositories.SettingsRepository
	logger       zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repositories.ProjectRepository, settingsRepo repositories.SettingsRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Submit upserts the caller's project. The GitHub URL must point at a
// repository and submissions must still be open. The repository layer owns
// the merge semantics; nothing is persisted on a validation failure.
func (s *ProjectService) Submit(ctx context.Context, userID, userName string, req *dto.SubmitProjectRequest) (*models.Project, bool, error) {
	if !validation.IsValidGithubURL(req.GithubURL) {
		return nil, false, apperrors.ErrInvalidGithubURL
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("error loading settings: %w", err)
	}
	if !settings.SubmissionsEnabled {
		return nil, false, apperrors.ErrSubmissionsClosed
	}

	status := models.ProjectStatus(req.Status)
	if status == "" {
		status = models.ProjectStatusDraft
	}

	project, created, err := s.projectRepo.Upsert(ctx, repositories.ProjectSubmission{
		UserID:      userID,
		UserName:    userName,
		TeamName:    req.TeamName,
		Domain:      req.Domain,
		Title:       req.Title,
		Description: req.Description,
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
		TechStack:   req.TechStack,
		Status:      status,
	})
	if err != nil {
		return nil, false, err
	}

	s.logger.Info().
		Str("userId", userID).
		Str("status", string(project.Status)).
		Bool("created", created).
		Msg("Project submission stored")
	return project, created, nil
}

// GetAllProjects lists every project (admin view)
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

// GetProjectByUserID retrieves the caller's own project
func (s *ProjectService) GetProjectByUserID(ctx context.Context, userID string) (*models.Project, error) {
	return s.projectRepo.GetByUserID(ctx, userID)
}

// Review applies admin rating, score and feedback to a project
func (s *ProjectService) Review(ctx context.Context, id string, req *dto.ReviewProjectRequest) (*models.Project, error) {
	return s.projectRepo.UpdateReview(ctx, id, repositories.ProjectReview{
		Rating:        req.Rating,
		Score:         req.Score,
		AdminFeedback: req.AdminFeedback,
	})
}

// Delete removes a project. Only the owner or an admin may delete it.
func (s *ProjectService) Delete(ctx context.Context, id, callerID string, isAdmin bool) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && project.UserID != callerID {
		return apperrors.ErrPermissionDenied
	}
	return s.projectRepo.Delete(ctx, id)
}
