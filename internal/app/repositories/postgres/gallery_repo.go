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

// GalleryRepository handles database operations for gallery items
type GalleryRepository struct {
	db *pgxpool.Pool
}

const galleryColumns = `id, filename, url, type, caption, public_visible, created_at, updated_at`

func scanGalleryItem(row pgx.Row) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := row.Scan(
		&item.ID,
		&item.Filename,
		&item.URL,
		&item.Type,
		&item.Caption,
		&item.PublicVisible,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGalleryItemNotFound
		}
		return nil, fmt.Errorf("error scanning gallery item: %w", err)
	}
	return &item, nil
}

func (r *GalleryRepository) GetAll(ctx context.Context) ([]*models.GalleryItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+galleryColumns+` FROM gallery_items ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.GalleryItem
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	row := r.db.QueryRow(ctx, `SELECT `+galleryColumns+` FROM gallery_items WHERE id = $1`, id)
	return scanGalleryItem(row)
}

func (r *GalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO gallery_items (id, filename, url, type, caption, public_visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Filename, item.URL, item.Type, item.Caption,
		item.PublicVisible, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating gallery item: %w", err)
	}
	return nil
}

func (r *GalleryRepository) Update(ctx context.Context, id string, update repositories.GalleryItemUpdate) (*models.GalleryItem, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Filename != nil {
		item.Filename = *update.Filename
	}
	if update.URL != nil {
		item.URL = *update.URL
	}
	if update.Type != nil {
		item.Type = *update.Type
	}
	if update.Caption != nil {
		item.Caption = *update.Caption
	}
	if update.PublicVisible != nil {
		item.PublicVisible = *update.PublicVisible
	}
	item.UpdatedAt = time.Now()

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE gallery_items
		SET filename = $1, url = $2, type = $3, caption = $4, public_visible = $5, updated_at = $6
		WHERE id = $7`,
		item.Filename, item.URL, item.Type, item.Caption, item.PublicVisible,
		item.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating gallery item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrGalleryItemNotFound
	}
	return item, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting gallery item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryItemNotFound
	}
	return nil
}
