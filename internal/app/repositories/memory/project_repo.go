package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

// ProjectRepository implements repositories.ProjectRepository over the shared store
type ProjectRepository struct {
	store *Store
}

func cloneProject(p *models.Project) *models.Project {
	clone := *p
	clone.TechStack = append([]string(nil), p.TechStack...)
	if p.SubmittedAt != nil {
		at := *p.SubmittedAt
		clone.SubmittedAt = &at
	}
	return &clone
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]*models.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	projects := make([]*models.Project, len(r.store.data.Projects))
	for i, p := range r.store.data.Projects {
		projects[i] = cloneProject(p)
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.data.Projects {
		if p.ID == id {
			return cloneProject(p), nil
		}
	}
	return nil, apperrors.ErrProjectNotFound
}

func (r *ProjectRepository) GetByUserID(ctx context.Context, userID string) (*models.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.data.Projects {
		if p.UserID == userID {
			return cloneProject(p), nil
		}
	}
	return nil, apperrors.ErrProjectNotFound
}

// Upsert merges the submission into the owner's existing project or creates
// one with zeroed review fields. Only the submission allowlist is touched;
// rating, score and feedback survive resubmission.
func (r *ProjectRepository) Upsert(ctx context.Context, sub repositories.ProjectSubmission) (*models.Project, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	for _, p := range r.store.data.Projects {
		if p.UserID != sub.UserID {
			continue
		}
		applySubmission(p, sub, now)
		r.store.persistLocked()
		return cloneProject(p), false, nil
	}

	project := &models.Project{
		ID:        uuid.New().String(),
		UserID:    sub.UserID,
		Rating:    0,
		Score:     0,
		CreatedAt: now,
	}
	applySubmission(project, sub, now)
	r.store.data.Projects = append(r.store.data.Projects, project)
	r.store.persistLocked()
	return cloneProject(project), true, nil
}

// applySubmission copies the owner-editable fields and stamps SubmittedAt on
// the first transition into submitted.
func applySubmission(p *models.Project, sub repositories.ProjectSubmission, now time.Time) {
	p.UserName = sub.UserName
	p.TeamName = sub.TeamName
	p.Domain = sub.Domain
	p.Title = sub.Title
	p.Description = sub.Description
	p.GithubURL = sub.GithubURL
	p.LiveURL = sub.LiveURL
	p.TechStack = append([]string(nil), sub.TechStack...)
	p.Status = sub.Status
	if sub.Status == models.ProjectStatusSubmitted && p.SubmittedAt == nil {
		at := now
		p.SubmittedAt = &at
	}
	p.UpdatedAt = now
}

func (r *ProjectRepository) UpdateReview(ctx context.Context, id string, review repositories.ProjectReview) (*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.data.Projects {
		if p.ID != id {
			continue
		}
		if review.Rating != nil {
			p.Rating = *review.Rating
		}
		if review.Score != nil {
			p.Score = *review.Score
		}
		if review.AdminFeedback != nil {
			p.AdminFeedback = *review.AdminFeedback
		}
		p.UpdatedAt = time.Now()
		r.store.persistLocked()
		return cloneProject(p), nil
	}
	return nil, apperrors.ErrProjectNotFound
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	filtered := r.store.data.Projects[:0]
	found := false
	for _, p := range r.store.data.Projects {
		if p.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, p)
	}
	if !found {
		return apperrors.ErrProjectNotFound
	}
	r.store.data.Projects = filtered
	r.store.persistLocked()
	return nil
}
