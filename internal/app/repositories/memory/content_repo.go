package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

// ReportRepository implements repositories.ReportRepository over the shared store
type ReportRepository struct {
	store *Store
}

func (r *ReportRepository) GetAll(ctx context.Context) ([]*models.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reports := make([]*models.Report, len(r.store.data.Reports))
	for i, rep := range r.store.data.Reports {
		clone := *rep
		reports[i] = &clone
	}
	return reports, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rep := range r.store.data.Reports {
		if rep.ID == id {
			clone := *rep
			return &clone, nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	clone := *report
	r.store.data.Reports = append(r.store.data.Reports, &clone)
	r.store.persistLocked()
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	filtered := r.store.data.Reports[:0]
	found := false
	for _, rep := range r.store.data.Reports {
		if rep.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, rep)
	}
	if !found {
		return apperrors.ErrReportNotFound
	}
	r.store.data.Reports = filtered
	r.store.persistLocked()
	return nil
}

// CertificateRepository implements repositories.CertificateRepository over the shared store
type CertificateRepository struct {
	store *Store
}

func (r *CertificateRepository) GetAll(ctx context.Context) ([]*models.Certificate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	certs := make([]*models.Certificate, len(r.store.data.Certificates))
	for i, c := range r.store.data.Certificates {
		clone := *c
		certs[i] = &clone
	}
	return certs, nil
}

func (r *CertificateRepository) GetByStudentID(ctx context.Context, studentID string) ([]*models.Certificate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var certs []*models.Certificate
	for _, c := range r.store.data.Certificates {
		if c.StudentID == studentID {
			clone := *c
			certs = append(certs, &clone)
		}
	}
	return certs, nil
}

func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if cert.ID == "" {
		cert.ID = uuid.New().String()
	}
	now := time.Now()
	cert.CreatedAt = now
	cert.UpdatedAt = now

	clone := *cert
	r.store.data.Certificates = append(r.store.data.Certificates, &clone)
	r.store.persistLocked()
	return nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	filtered := r.store.data.Certificates[:0]
	found := false
	for _, c := range r.store.data.Certificates {
		if c.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, c)
	}
	if !found {
		return apperrors.ErrCertificateNotFound
	}
	r.store.data.Certificates = filtered
	r.store.persistLocked()
	return nil
}

// SettingsRepository implements repositories.SettingsRepository over the shared store
type SettingsRepository struct {
	store *Store
}

// Get returns the singleton settings record, creating it lazily on first read.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.data.Settings == nil {
		r.store.data.Settings = models.DefaultSettings()
		r.store.persistLocked()
	}
	clone := *r.store.data.Settings
	return &clone, nil
}

func (r *SettingsRepository) Update(ctx context.Context, update repositories.SettingsUpdate) (*models.Settings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.data.Settings == nil {
		r.store.data.Settings = models.DefaultSettings()
	}
	s := r.store.data.Settings
	if update.SubmissionsEnabled != nil {
		s.SubmissionsEnabled = *update.SubmissionsEnabled
	}
	if update.WorkshopEndTime != nil {
		s.WorkshopEndTime = *update.WorkshopEndTime
	}
	if update.Announcement != nil {
		s.Announcement = *update.Announcement
	}
	if update.GalleryPublic != nil {
		s.GalleryPublic = *update.GalleryPublic
	}
	s.UpdatedAt = time.Now()
	r.store.persistLocked()
	clone := *s
	return &clone, nil
}
