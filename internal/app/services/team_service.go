package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
)

// TeamService handles team registration and management
type TeamService struct {
	teamRepo repositories.TeamRepository
	logger   zerolog.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repositories.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

// CreateTeam registers a team led by the caller. A user may belong to at most
// one team, as leader or member; the whole roster is checked before create.
func (s *TeamService) CreateTeam(ctx context.Context, leaderID, leaderName string, req *dto.CreateTeamRequest) (*models.Team, error) {
	members := make([]models.TeamMember, 0, len(req.Members))
	for _, m := range req.Members {
		members = append(members, models.TeamMember{Name: m.Name, UserID: m.UserID})
	}

	existing, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range existing {
		if t.HasMember(leaderID) {
			return nil, apperrors.ErrAlreadyInTeam
		}
		for _, m := range members {
			if t.HasMember(m.UserID) {
				return nil, apperrors.ErrAlreadyInTeam
			}
		}
	}

	team := &models.Team{
		TeamName:   req.TeamName,
		LeaderID:   leaderID,
		LeaderName: leaderName,
		Members:    members,
		Domain:     req.Domain,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Info().Str("teamName", team.TeamName).Str("leaderId", leaderID).Msg("Team registered")
	return team, nil
}

// GetAllTeams lists every team
func (s *TeamService) GetAllTeams(ctx context.Context) ([]*models.Team, error) {
	return s.teamRepo.GetAll(ctx)
}

// GetTeamByID retrieves one team
func (s *TeamService) GetTeamByID(ctx context.Context, id string) (*models.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

// UpdateTeam applies a partial update. Only the leader or an admin may change
// a team.
func (s *TeamService) UpdateTeam(ctx context.Context, id, callerID string, isAdmin bool, req *dto.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && team.LeaderID != callerID {
		return nil, apperrors.ErrPermissionDenied
	}

	update := repositories.TeamUpdate{
		TeamName: req.TeamName,
		Domain:   req.Domain,
	}
	if req.Members != nil {
		members := make([]models.TeamMember, 0, len(*req.Members))
		for _, m := range *req.Members {
			members = append(members, models.TeamMember{Name: m.Name, UserID: m.UserID})
		}
		update.Members = &members
	}

	return s.teamRepo.Update(ctx, id, update)
}

// DeleteTeam removes a team. Only the leader or an admin may delete it.
func (s *TeamService) DeleteTeam(ctx context.Context, id, callerID string, isAdmin bool) error {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && team.LeaderID != callerID {
		return apperrors.ErrPermissionDenied
	}
	return s.teamRepo.Delete(ctx, id)
}
