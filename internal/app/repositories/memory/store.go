// Package memory implements the repository contracts on top of an in-process
// store that is serialized to a JSON file after every mutation. It is the
// fallback backend used when no database is reachable at startup.
package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
)

// storeData is the in-memory state of the fallback store. It is serialized
// through persistedData, not directly.
type storeData struct {
	Users        []*models.User
	Teams        []*models.Team
	Projects     []*models.Project
	Attendance   []*models.Attendance
	Gallery      []*models.GalleryItem
	Reports      []*models.Report
	Certificates []*models.Certificate
	Settings     *models.Settings
}

// persistedUser is the on-disk shape of a user. The model hides the password
// hash from API JSON; the fallback file must carry it or no account could
// log in after a restart.
type persistedUser struct {
	*models.User
	Password string `json:"password"`
}

// persistedData is the full serialized shape of the fallback store. The file
// is overwritten wholesale on every mutation, never appended to.
type persistedData struct {
	Users        []persistedUser       `json:"users"`
	Teams        []*models.Team        `json:"teams"`
	Projects     []*models.Project     `json:"projects"`
	Attendance   []*models.Attendance  `json:"attendance"`
	Gallery      []*models.GalleryItem `json:"gallery"`
	Reports      []*models.Report      `json:"reports"`
	Certificates []*models.Certificate `json:"certificates"`
	Settings     *models.Settings      `json:"settings"`
}

func (d *storeData) persisted() persistedData {
	users := make([]persistedUser, len(d.Users))
	for i, u := range d.Users {
		users[i] = persistedUser{User: u, Password: u.Password}
	}
	return persistedData{
		Users:        users,
		Teams:        d.Teams,
		Projects:     d.Projects,
		Attendance:   d.Attendance,
		Gallery:      d.Gallery,
		Reports:      d.Reports,
		Certificates: d.Certificates,
		Settings:     d.Settings,
	}
}

func (d *storeData) restore(p persistedData) {
	d.Users = make([]*models.User, 0, len(p.Users))
	for _, u := range p.Users {
		if u.User == nil {
			continue
		}
		u.User.Password = u.Password
		d.Users = append(d.Users, u.User)
	}
	d.Teams = p.Teams
	d.Projects = p.Projects
	d.Attendance = p.Attendance
	d.Gallery = p.Gallery
	d.Reports = p.Reports
	d.Certificates = p.Certificates
	d.Settings = p.Settings
}

// Store holds every collection behind one mutex. It is constructed and
// injected, never a package global, so tests can run isolated instances.
type Store struct {
	mu     sync.RWMutex
	data   storeData
	path   string
	logger zerolog.Logger
}

// NewStore creates a store persisted at path, hydrating from the file when
// it already exists. A load failure falls back to an empty store; the seed
// step fills in the default roster afterwards.
func NewStore(path string, logger zerolog.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var p persistedData
		if err := json.Unmarshal(raw, &p); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Fallback file is corrupt, starting from an empty store")
			s.data = storeData{}
		} else {
			s.data.restore(p)
			logger.Info().Str("path", path).Msg("Fallback store hydrated from disk")
		}
	} else if !os.IsNotExist(err) {
		logger.Error().Err(err).Str("path", path).Msg("Failed to read fallback file, starting from an empty store")
	}

	return s
}

// NewRepositories wires every repository interface to one shared store.
func NewRepositories(store *Store) *repositories.Repositories {
	return &repositories.Repositories{
		Users:        &UserRepository{store: store},
		Teams:        &TeamRepository{store: store},
		Projects:     &ProjectRepository{store: store},
		Attendance:   &AttendanceRepository{store: store},
		Gallery:      &GalleryRepository{store: store},
		Reports:      &ReportRepository{store: store},
		Certificates: &CertificateRepository{store: store},
		Settings:     &SettingsRepository{store: store},
	}
}

// persistLocked serializes the whole store to disk. Callers must hold the
// write lock. A failed write is logged and swallowed: the in-memory mutation
// stands, durability across restarts is best-effort by contract.
func (s *Store) persistLocked() {
	p := s.data.persisted()
	raw, err := json.MarshalIndent(&p, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to serialize fallback store")
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Error().Err(err).Str("dir", dir).Msg("Failed to create fallback store directory")
			return
		}
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to persist fallback store")
	}
}
