package postgres

import (
	"context"
	"encoding/json"
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

// TeamRepository handles database operations for teams. The member roster is
// stored as a JSONB column, matching the document shape the API exposes.
type TeamRepository struct {
	db *pgxpool.Pool
}

const teamColumns = `id, team_name, leader_id, leader_name, members, domain, created_at, updated_at`

func scanTeam(row pgx.Row) (*models.Team, error) {
	var team models.Team
	var members []byte
	err := row.Scan(
		&team.ID,
		&team.TeamName,
		&team.LeaderID,
		&team.LeaderName,
		&members,
		&team.Domain,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team: %w", err)
	}
	if len(members) > 0 {
		if err := json.Unmarshal(members, &team.Members); err != nil {
			return nil, fmt.Errorf("error decoding team members: %w", err)
		}
	}
	return &team, nil
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]*models.Team, error) {
	rows, err := r.db.Query(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	row := r.db.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	return scanTeam(row)
}

func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = $1)`, team.TeamName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking team existence: %w", err)
	}
	if exists {
		return apperrors.ErrTeamAlreadyExists
	}

	if team.ID == "" {
		team.ID = uuid.New().String()
	}
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	members, err := json.Marshal(team.Members)
	if err != nil {
		return fmt.Errorf("error encoding team members: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO teams (id, team_name, leader_id, leader_name, members, domain, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		team.ID, team.TeamName, team.LeaderID, team.LeaderName, members,
		team.Domain, team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating team: %w", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, update repositories.TeamUpdate) (*models.Team, error) {
	team, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.TeamName != nil {
		team.TeamName = *update.TeamName
	}
	if update.Members != nil {
		team.Members = *update.Members
	}
	if update.Domain != nil {
		team.Domain = *update.Domain
	}
	team.UpdatedAt = time.Now()

	members, err := json.Marshal(team.Members)
	if err != nil {
		return nil, fmt.Errorf("error encoding team members: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE teams
		SET team_name = $1, members = $2, domain = $3, updated_at = $4
		WHERE id = $5`,
		team.TeamName, members, team.Domain, team.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating team: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting team: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}
