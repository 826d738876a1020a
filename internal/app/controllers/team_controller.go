package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/services"
	"github.com/forgecrew/workshophub/internal/middleware"
)

// TeamController handles team registration and management
type TeamController struct {
	teamService *services.TeamService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService *services.TeamService) *TeamController {
	return &TeamController{teamService: teamService}
}

// GetAllTeams lists every registered team
// @Summary Get all teams
// @Description Lists every registered team. Available to all authenticated users.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Team} "Teams retrieved successfully"
// @Router /teams [get]
func (c *TeamController) GetAllTeams(ctx *gin.Context) {
	teams, err := c.teamService.GetAllTeams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teams))
}

// GetTeamByID retrieves one team
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} dto.APIResponse{data=models.Team} "Team retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (c *TeamController) GetTeamByID(ctx *gin.Context) {
	team, err := c.teamService.GetTeamByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(team))
}

// CreateTeam registers a team led by the caller
// @Summary Register a team
// @Description Registers a team with the caller as leader. Fails when anyone on the roster already belongs to a team.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.APIResponse{data=models.Team} "Team registered"
// @Failure 409 {object} dto.ErrorResponse "Name taken or a member already has a team"
// @Router /teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	var req dto.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	leaderID, leaderName, _ := middleware.CallerIdentity(ctx)
	team, err := c.teamService.CreateTeam(ctx, leaderID, leaderName, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(team))
}

// UpdateTeam applies a partial update to a team
// @Summary Update a team
// @Description Updates team name, roster or domain. Leader or admin only.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body dto.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Team} "Team updated"
// @Failure 403 {object} dto.ErrorResponse "Caller is neither leader nor admin"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [put]
func (c *TeamController) UpdateTeam(ctx *gin.Context) {
	var req dto.UpdateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	callerID, _, _ := middleware.CallerIdentity(ctx)
	team, err := c.teamService.UpdateTeam(ctx, ctx.Param("id"), callerID, middleware.IsAdmin(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(team))
}

// DeleteTeam removes a team
// @Summary Delete a team
// @Description Removes a team. Leader or admin only.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Team deleted"
// @Failure 403 {object} dto.ErrorResponse "Caller is neither leader nor admin"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [delete]
func (c *TeamController) DeleteTeam(ctx *gin.Context) {
	callerID, _, _ := middleware.CallerIdentity(ctx)
	if err := c.teamService.DeleteTeam(ctx, ctx.Param("id"), callerID, middleware.IsAdmin(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Team deleted successfully"))
}
