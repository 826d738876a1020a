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

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

const attendanceColumns = `id, participant_name, student_id, team_name, email,
	first_half, second_half, remarks, created_at, updated_at`

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var record models.Attendance
	err := row.Scan(
		&record.ID,
		&record.ParticipantName,
		&record.StudentID,
		&record.TeamName,
		&record.Email,
		&record.FirstHalf,
		&record.SecondHalf,
		&record.Remarks,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error scanning attendance record: %w", err)
	}
	return &record, nil
}

func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*models.Attendance, error) {
	rows, err := r.db.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (*models.Attendance, error) {
	row := r.db.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE id = $1`, id)
	return scanAttendance(row)
}

func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO attendance (id, participant_name, student_id, team_name, email,
			first_half, second_half, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		record.ID, record.ParticipantName, record.StudentID, record.TeamName,
		record.Email, record.FirstHalf, record.SecondHalf, record.Remarks,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating attendance record: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) Update(ctx context.Context, id string, update repositories.AttendanceUpdate) (*models.Attendance, error) {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.ParticipantName != nil {
		record.ParticipantName = *update.ParticipantName
	}
	if update.StudentID != nil {
		record.StudentID = *update.StudentID
	}
	if update.TeamName != nil {
		record.TeamName = *update.TeamName
	}
	if update.Email != nil {
		record.Email = *update.Email
	}
	if update.FirstHalf != nil {
		record.FirstHalf = *update.FirstHalf
	}
	if update.SecondHalf != nil {
		record.SecondHalf = *update.SecondHalf
	}
	if update.Remarks != nil {
		record.Remarks = *update.Remarks
	}
	record.UpdatedAt = time.Now()

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE attendance
		SET participant_name = $1, student_id = $2, team_name = $3, email = $4,
			first_half = $5, second_half = $6, remarks = $7, updated_at = $8
		WHERE id = $9`,
		record.ParticipantName, record.StudentID, record.TeamName, record.Email,
		record.FirstHalf, record.SecondHalf, record.Remarks, record.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrAttendanceNotFound
	}
	return record, nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}
