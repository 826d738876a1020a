package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

// TeamRepository implements repositories.TeamRepository over the shared store
type TeamRepository struct {
	store *Store
}

func cloneTeam(t *models.Team) *models.Team {
	clone := *t
	clone.Members = append([]models.TeamMember(nil), t.Members...)
	return &clone
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]*models.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	teams := make([]*models.Team, len(r.store.data.Teams))
	for i, t := range r.store.data.Teams {
		teams[i] = cloneTeam(t)
	}
	return teams, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.data.Teams {
		if t.ID == id {
			return cloneTeam(t), nil
		}
	}
	return nil, apperrors.ErrTeamNotFound
}

func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.data.Teams {
		if t.TeamName == team.TeamName {
			return apperrors.ErrTeamAlreadyExists
		}
	}

	if team.ID == "" {
		team.ID = uuid.New().String()
	}
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	r.store.data.Teams = append(r.store.data.Teams, cloneTeam(team))
	r.store.persistLocked()
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, update repositories.TeamUpdate) (*models.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.data.Teams {
		if t.ID != id {
			continue
		}
		if update.TeamName != nil {
			t.TeamName = *update.TeamName
		}
		if update.Members != nil {
			t.Members = append([]models.TeamMember(nil), *update.Members...)
		}
		if update.Domain != nil {
			t.Domain = *update.Domain
		}
		t.UpdatedAt = time.Now()
		r.store.persistLocked()
		return cloneTeam(t), nil
	}
	return nil, apperrors.ErrTeamNotFound
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	filtered := r.store.data.Teams[:0]
	found := false
	for _, t := range r.store.data.Teams {
		if t.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, t)
	}
	if !found {
		return apperrors.ErrTeamNotFound
	}
	r.store.data.Teams = filtered
	r.store.persistLocked()
	return nil
}
