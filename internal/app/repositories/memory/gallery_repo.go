package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

// GalleryRepository implements repositories.GalleryRepository over the shared store
type GalleryRepository struct {
	store *Store
}

func (r *GalleryRepository) GetAll(ctx context.Context) ([]*models.GalleryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]*models.GalleryItem, len(r.store.data.Gallery))
	for i, g := range r.store.data.Gallery {
		clone := *g
		items[i] = &clone
	}
	return items, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, g := range r.store.data.Gallery {
		if g.ID == id {
			clone := *g
			return &clone, nil
		}
	}
	return nil, apperrors.ErrGalleryItemNotFound
}

func (r *GalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	clone := *item
	r.store.data.Gallery = append(r.store.data.Gallery, &clone)
	r.store.persistLocked()
	return nil
}

func (r *GalleryRepository) Update(ctx context.Context, id string, update repositories.GalleryItemUpdate) (*models.GalleryItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, g := range r.store.data.Gallery {
		if g.ID != id {
			continue
		}
		if update.Filename != nil {
			g.Filename = *update.Filename
		}
		if update.URL != nil {
			g.URL = *update.URL
		}
		if update.Type != nil {
			g.Type = *update.Type
		}
		if update.Caption != nil {
			g.Caption = *update.Caption
		}
		if update.PublicVisible != nil {
			g.PublicVisible = *update.PublicVisible
		}
		g.UpdatedAt = time.Now()
		r.store.persistLocked()
		clone := *g
		return &clone, nil
	}
	return nil, apperrors.ErrGalleryItemNotFound
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	filtered := r.store.data.Gallery[:0]
	found := false
	for _, g := range r.store.data.Gallery {
		if g.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, g)
	}
	if !found {
		return apperrors.ErrGalleryItemNotFound
	}
	r.store.data.Gallery = filtered
	r.store.persistLocked()
	return nil
}
