package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

// ProjectRepository handles database operations for project entries
type ProjectRepository struct {
	db *pgxpool.Pool
}

const projectColumns = `id, user_id, user_name, team_name, domain, title, description,
	github_url, live_url, tech_stack, status, submitted_at, rating, score,
	admin_feedback, created_at, updated_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.UserName,
		&project.TeamName,
		&project.Domain,
		&project.Title,
		&project.Description,
		&project.GithubURL,
		&project.LiveURL,
		&project.TechStack,
		&project.Status,
		&project.SubmittedAt,
		&project.Rating,
		&project.Score,
		&project.AdminFeedback,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error scanning project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (r *ProjectRepository) GetByUserID(ctx context.Context, userID string) (*models.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE user_id = $1`, userID)
	return scanProject(row)
}

// Upsert creates the owner's project or merges the submission fields into the
// existing row. SubmittedAt is stamped on the first transition into submitted
// and review fields are never touched by this path.
func (r *ProjectRepository) Upsert(ctx context.Context, sub repositories.ProjectSubmission) (*models.Project, bool, error) {
	existing, err := r.GetByUserID(ctx, sub.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrProjectNotFound) {
		return nil, false, err
	}

	now := time.Now()
	if existing == nil {
		project := &models.Project{
			ID:          uuid.New().String(),
			UserID:      sub.UserID,
			UserName:    sub.UserName,
			TeamName:    sub.TeamName,
			Domain:      sub.Domain,
			Title:       sub.Title,
			Description: sub.Description,
			GithubURL:   sub.GithubURL,
			LiveURL:     sub.LiveURL,
			TechStack:   sub.TechStack,
			Status:      sub.Status,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if sub.Status == models.ProjectStatusSubmitted {
			project.SubmittedAt = &now
		}

		_, err = r.db.Exec(ctx, `
			INSERT INTO projects (id, user_id, user_name, team_name, domain, title, description,
				github_url, live_url, tech_stack, status, submitted_at, rating, score,
				admin_feedback, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, 0, '', $13, $14)`,
			project.ID, project.UserID, project.UserName, project.TeamName, project.Domain,
			project.Title, project.Description, project.GithubURL, project.LiveURL,
			project.TechStack, project.Status, project.SubmittedAt,
			project.CreatedAt, project.UpdatedAt,
		)
		if err != nil {
			return nil, false, fmt.Errorf("error creating project: %w", err)
		}
		return project, true, nil
	}

	existing.UserName = sub.UserName
	existing.TeamName = sub.TeamName
	existing.Domain = sub.Domain
	existing.Title = sub.Title
	existing.Description = sub.Description
	existing.GithubURL = sub.GithubURL
	existing.LiveURL = sub.LiveURL
	existing.TechStack = sub.TechStack
	existing.Status = sub.Status
	if sub.Status == models.ProjectStatusSubmitted && existing.SubmittedAt == nil {
		existing.SubmittedAt = &now
	}
	existing.UpdatedAt = now

	_, err = r.db.Exec(ctx, `
		UPDATE projects
		SET user_name = $1, team_name = $2, domain = $3, title = $4, description = $5,
			github_url = $6, live_url = $7, tech_stack = $8, status = $9,
			submitted_at = $10, updated_at = $11
		WHERE user_id = $12`,
		existing.UserName, existing.TeamName, existing.Domain, existing.Title,
		existing.Description, existing.GithubURL, existing.LiveURL, existing.TechStack,
		existing.Status, existing.SubmittedAt, existing.UpdatedAt, sub.UserID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("error updating project: %w", err)
	}
	return existing, false, nil
}

func (r *ProjectRepository) UpdateReview(ctx context.Context, id string, review repositories.ProjectReview) (*models.Project, error) {
	project, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.Rating != nil {
		project.Rating = *review.Rating
	}
	if review.Score != nil {
		project.Score = *review.Score
	}
	if review.AdminFeedback != nil {
		project.AdminFeedback = *review.AdminFeedback
	}
	project.UpdatedAt = time.Now()

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE projects
		SET rating = $1, score = $2, admin_feedback = $3, updated_at = $4
		WHERE id = $5`,
		project.Rating, project.Score, project.AdminFeedback, project.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating project review: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrProjectNotFound
	}
	return project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
