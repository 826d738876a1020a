package models

import (
	"time"
)

// GalleryItem is an uploaded photo or clip shown in the workshop gallery.
// PublicVisible can be toggled without touching the rest of the record;
// items only reach the public endpoint when the gallery itself is public.
type GalleryItem struct {
	ID            string          `json:"id" db:"id"`
	Filename      string          `json:"filename" db:"filename"`
	URL           string          `json:"url" db:"url"` // data URI or stored path
	Type          GalleryItemType `json:"type" db:"type"`
	Caption       string          `json:"caption" db:"caption"`
	PublicVisible bool            `json:"publicVisible" db:"public_visible"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}
