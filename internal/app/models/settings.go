package models

import (
	"time"
)

// Settings is the singleton workshop configuration record, keyed "main".
// It is created lazily with defaults on first read.
type Settings struct {
	ID                 string    `json:"id" db:"id"`
	SubmissionsEnabled bool      `json:"submissionsEnabled" db:"submissions_enabled"`
	WorkshopEndTime    string    `json:"workshopEndTime" db:"workshop_end_time"`
	Announcement       string    `json:"announcement" db:"announcement"`
	GalleryPublic      bool      `json:"galleryPublic" db:"gallery_public"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultSettings returns the settings record used when none exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                 SettingsID,
		SubmissionsEnabled: true,
		WorkshopEndTime:    "",
		Announcement:       "",
		GalleryPublic:      false,
		UpdatedAt:          time.Now(),
	}
}
