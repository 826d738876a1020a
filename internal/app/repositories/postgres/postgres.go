// Package postgres implements the repository contracts against PostgreSQL
// using pgx. It is the primary backend; the memory package is the fallback.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forgecrew/workshophub/internal/app/repositories"
)

// NewRepositories wires every repository interface to one connection pool.
func NewRepositories(pool *pgxpool.Pool) *repositories.Repositories {
	return &repositories.Repositories{
		Users:        &UserRepository{db: pool},
		Teams:        &TeamRepository{db: pool},
		Projects:     &ProjectRepository{db: pool},
		Attendance:   &AttendanceRepository{db: pool},
		Gallery:      &GalleryRepository{db: pool},
		Reports:      &ReportRepository{db: pool},
		Certificates: &CertificateRepository{db: pool},
		Settings:     &SettingsRepository{db: pool},
	}
}
