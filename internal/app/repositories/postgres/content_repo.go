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

// ReportRepository handles database operations for admin documents
type ReportRepository struct {
	db *pgxpool.Pool
}

const reportColumns = `id, file_name, file_url, file_type, category, description, created_at, updated_at`

func scanReport(row pgx.Row) (*models.Report, error) {
	var report models.Report
	err := row.Scan(
		&report.ID,
		&report.FileName,
		&report.FileURL,
		&report.FileType,
		&report.Category,
		&report.Description,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("error scanning report: %w", err)
	}
	return &report, nil
}

func (r *ReportRepository) GetAll(ctx context.Context) ([]*models.Report, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	return scanReport(row)
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO reports (id, file_name, file_url, file_type, category, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		report.ID, report.FileName, report.FileURL, report.FileType,
		report.Category, report.Description, report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating report: %w", err)
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}

// CertificateRepository handles database operations for issued certificates
type CertificateRepository struct {
	db *pgxpool.Pool
}

const certificateColumns = `id, student_name, student_id, certificate_url, certificate_type, issued_by, created_at, updated_at`

func scanCertificate(row pgx.Row) (*models.Certificate, error) {
	var cert models.Certificate
	err := row.Scan(
		&cert.ID,
		&cert.StudentName,
		&cert.StudentID,
		&cert.CertificateURL,
		&cert.CertificateType,
		&cert.IssuedBy,
		&cert.CreatedAt,
		&cert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("error scanning certificate: %w", err)
	}
	return &cert, nil
}

func (r *CertificateRepository) GetAll(ctx context.Context) ([]*models.Certificate, error) {
	rows, err := r.db.Query(ctx, `SELECT `+certificateColumns+` FROM certificates ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []*models.Certificate
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepository) GetByStudentID(ctx context.Context, studentID string) ([]*models.Certificate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+certificateColumns+` FROM certificates WHERE student_id = $1 ORDER BY created_at`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []*models.Certificate
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	if cert.ID == "" {
		cert.ID = uuid.New().String()
	}
	now := time.Now()
	cert.CreatedAt = now
	cert.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO certificates (id, student_name, student_id, certificate_url, certificate_type, issued_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cert.ID, cert.StudentName, cert.StudentID, cert.CertificateURL,
		cert.CertificateType, cert.IssuedBy, cert.CreatedAt, cert.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating certificate: %w", err)
	}
	return nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting certificate: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCertificateNotFound
	}
	return nil
}

// SettingsRepository handles the singleton settings row
type SettingsRepository struct {
	db *pgxpool.Pool
}

const settingsColumns = `id, submissions_enabled, workshop_end_time, announcement, gallery_public, updated_at`

func scanSettings(row pgx.Row) (*models.Settings, error) {
	var settings models.Settings
	err := row.Scan(
		&settings.ID,
		&settings.SubmissionsEnabled,
		&settings.WorkshopEndTime,
		&settings.Announcement,
		&settings.GalleryPublic,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Get returns the settings row, inserting the defaults when it does not exist yet.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	row := r.db.QueryRow(ctx, `SELECT `+settingsColumns+` FROM settings WHERE id = $1`, models.SettingsID)
	settings, err := scanSettings(row)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error retrieving settings: %w", err)
	}

	defaults := models.DefaultSettings()
	_, err = r.db.Exec(ctx, `
		INSERT INTO settings (id, submissions_enabled, workshop_end_time, announcement, gallery_public, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		defaults.ID, defaults.SubmissionsEnabled, defaults.WorkshopEndTime,
		defaults.Announcement, defaults.GalleryPublic, defaults.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating default settings: %w", err)
	}
	return defaults, nil
}

func (r *SettingsRepository) Update(ctx context.Context, update repositories.SettingsUpdate) (*models.Settings, error) {
	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	if update.SubmissionsEnabled != nil {
		settings.SubmissionsEnabled = *update.SubmissionsEnabled
	}
	if update.WorkshopEndTime != nil {
		settings.WorkshopEndTime = *update.WorkshopEndTime
	}
	if update.Announcement != nil {
		settings.Announcement = *update.Announcement
	}
	if update.GalleryPublic != nil {
		settings.GalleryPublic = *update.GalleryPublic
	}
	settings.UpdatedAt = time.Now()

	_, err = r.db.Exec(ctx, `
		UPDATE settings
		SET submissions_enabled = $1, workshop_end_time = $2, announcement = $3,
			gallery_public = $4, updated_at = $5
		WHERE id = $6`,
		settings.SubmissionsEnabled, settings.WorkshopEndTime, settings.Announcement,
		settings.GalleryPublic, settings.UpdatedAt, settings.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating settings: %w", err)
	}
	return settings, nil
}
