package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

// UserRepository implements repositories.UserRepository over the shared store
type UserRepository struct {
	store *Store
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*models.User, len(r.store.data.Users))
	for i, u := range r.store.data.Users {
		clone := *u
		users[i] = &clone
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.data.Users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.data.Users {
		if u.UserID == userID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.data.Users {
		if u.UserID == user.UserID {
			return apperrors.ErrUserIDExists
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	clone := *user
	r.store.data.Users = append(r.store.data.Users, &clone)
	r.store.persistLocked()
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, needsSetup bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.data.Users {
		if u.ID == id {
			u.Password = passwordHash
			u.NeedsPasswordSetup = needsSetup
			u.UpdatedAt = time.Now()
			r.store.persistLocked()
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	filtered := r.store.data.Users[:0]
	found := false
	for _, u := range r.store.data.Users {
		if u.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, u)
	}
	if !found {
		return apperrors.ErrUserNotFound
	}
	r.store.data.Users = filtered
	r.store.persistLocked()
	return nil
}
