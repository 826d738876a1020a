package models

// RoleType defines the user role type
type RoleType string

const (
	RoleParticipant RoleType = "participant"
	RoleAdmin       RoleType = "admin"
)

// ProjectStatus defines the project submission state
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusSubmitted ProjectStatus = "submitted"
)

// GalleryItemType classifies uploaded gallery media
type GalleryItemType string

const (
	GalleryItemImage GalleryItemType = "image"
	GalleryItemVideo GalleryItemType = "video"
	GalleryItemOther GalleryItemType = "other"
)

// SettingsID is the key of the singleton settings record
const SettingsID = "main"
