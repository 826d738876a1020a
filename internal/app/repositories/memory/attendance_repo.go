package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

// AttendanceRepository implements repositories.AttendanceRepository over the shared store
type AttendanceRepository struct {
	store *Store
}

func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*models.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]*models.Attendance, len(r.store.data.Attendance))
	for i, a := range r.store.data.Attendance {
		clone := *a
		records[i] = &clone
	}
	return records, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (*models.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, a := range r.store.data.Attendance {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, apperrors.ErrAttendanceNotFound
}

func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	clone := *record
	r.store.data.Attendance = append(r.store.data.Attendance, &clone)
	r.store.persistLocked()
	return nil
}

func (r *AttendanceRepository) Update(ctx context.Context, id string, update repositories.AttendanceUpdate) (*models.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, a := range r.store.data.Attendance {
		if a.ID != id {
			continue
		}
		if update.ParticipantName != nil {
			a.ParticipantName = *update.ParticipantName
		}
		if update.StudentID != nil {
			a.StudentID = *update.StudentID
		}
		if update.TeamName != nil {
			a.TeamName = *update.TeamName
		}
		if update.Email != nil {
			a.Email = *update.Email
		}
		if update.FirstHalf != nil {
			a.FirstHalf = *update.FirstHalf
		}
		if update.SecondHalf != nil {
			a.SecondHalf = *update.SecondHalf
		}
		if update.Remarks != nil {
			a.Remarks = *update.Remarks
		}
		a.UpdatedAt = time.Now()
		r.store.persistLocked()
		clone := *a
		return &clone, nil
	}
	return nil, apperrors.ErrAttendanceNotFound
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	filtered := r.store.data.Attendance[:0]
	found := false
	for _, a := range r.store.data.Attendance {
		if a.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, a)
	}
	if !found {
		return apperrors.ErrAttendanceNotFound
	}
	r.store.data.Attendance = filtered
	r.store.persistLocked()
	return nil
}
