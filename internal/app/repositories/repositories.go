// Package repositories defines the persistence contracts shared by the
// Postgres-backed and in-memory implementations. The backend is chosen once
// at startup; handlers and services only ever see these interfaces.
package repositories

import (
	"context"

	"github.com/forgecrew/workshophub/internal/app/models"
)

// UserRepository handles persistence for user accounts
type UserRepository interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByUserID looks up by the login identifier (stored uppercase)
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// UpdatePassword replaces the password hash and sets the setup flag
	UpdatePassword(ctx context.Context, id, passwordHash string, needsSetup bool) error
	Delete(ctx context.Context, id string) error
}

// TeamUpdate is the allowlist of mutable team fields; nil means keep
type TeamUpdate struct {
	TeamName *string
	Members  *[]models.TeamMember
	Domain   *string
}

// TeamRepository handles persistence for teams
type TeamRepository interface {
	GetAll(ctx context.Context) ([]*models.Team, error)
	GetByID(ctx context.Context, id string) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, id string, update TeamUpdate) (*models.Team, error)
	Delete(ctx context.Context, id string) error
}

// ProjectSubmission is the allowlist of owner-submitted project fields.
// Review fields (rating, score, feedback) deliberately do not appear here.
type ProjectSubmission struct {
	UserID      string
	UserName    string
	TeamName    string
	Domain      string
	Title       string
	Description string
	GithubURL   string
	LiveURL     string
	TechStack   []string
	Status      models.ProjectStatus
}

// ProjectReview is the allowlist of admin review fields; nil means keep
type ProjectReview struct {
	Rating        *int
	Score         *int
	AdminFeedback *string
}

// ProjectRepository handles persistence for project entries
type ProjectRepository interface {
	GetAll(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetByUserID(ctx context.Context, userID string) (*models.Project, error)
	// Upsert creates the owner's project on first call and merges the
	// submission fields on later calls. SubmittedAt is set on the first
	// transition into submitted and never cleared; review fields survive
	// resubmission untouched. Returns the stored record and whether it
	// was newly created.
	Upsert(ctx context.Context, sub ProjectSubmission) (*models.Project, bool, error)
	UpdateReview(ctx context.Context, id string, review ProjectReview) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// AttendanceUpdate is the allowlist of mutable attendance fields
type AttendanceUpdate struct {
	ParticipantName *string
	StudentID       *string
	TeamName        *string
	Email           *string
	FirstHalf       *bool
	SecondHalf      *bool
	Remarks         *string
}

// AttendanceRepository handles persistence for attendance records
type AttendanceRepository interface {
	GetAll(ctx context.Context) ([]*models.Attendance, error)
	GetByID(ctx context.Context, id string) (*models.Attendance, error)
	Create(ctx context.Context, record *models.Attendance) error
	Update(ctx context.Context, id string, update AttendanceUpdate) (*models.Attendance, error)
	Delete(ctx context.Context, id string) error
}

// GalleryItemUpdate is the allowlist of mutable gallery fields
type GalleryItemUpdate struct {
	Filename      *string
	URL           *string
	Type          *models.GalleryItemType
	Caption       *string
	PublicVisible *bool
}

// GalleryRepository handles persistence for gallery items
type GalleryRepository interface {
	GetAll(ctx context.Context) ([]*models.GalleryItem, error)
	GetByID(ctx context.Context, id string) (*models.GalleryItem, error)
	Create(ctx context.Context, item *models.GalleryItem) error
	Update(ctx context.Context, id string, update GalleryItemUpdate) (*models.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

// ReportRepository handles persistence for admin documents
type ReportRepository interface {
	GetAll(ctx context.Context) ([]*models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	Create(ctx context.Context, report *models.Report) error
	Delete(ctx context.Context, id string) error
}

// CertificateRepository handles persistence for issued certificates
type CertificateRepository interface {
	GetAll(ctx context.Context) ([]*models.Certificate, error)
	GetByStudentID(ctx context.Context, studentID string) ([]*models.Certificate, error)
	Create(ctx context.Context, cert *models.Certificate) error
	Delete(ctx context.Context, id string) error
}

// SettingsUpdate is the allowlist of mutable settings fields
type SettingsUpdate struct {
	SubmissionsEnabled *bool
	WorkshopEndTime    *string
	Announcement       *string
	GalleryPublic      *bool
}

// SettingsRepository handles the singleton settings record
type SettingsRepository interface {
	// Get returns the settings record, creating it with defaults when absent
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, update SettingsUpdate) (*models.Settings, error)
}

// Repositories aggregates every repository behind one injection point
type Repositories struct {
	Users        UserRepository
	Teams        TeamRepository
	Projects     ProjectRepository
	Attendance   AttendanceRepository
	Gallery      GalleryRepository
	Reports      ReportRepository
	Certificates CertificateRepository
	Settings     SettingsRepository
}
