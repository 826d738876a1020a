package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/services"
	"github.com/forgecrew/workshophub/internal/middleware"
)

// ProjectController handles project submission and review
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// GetAllProjects lists every project
// @Summary Get all projects
// @Description Lists every project with review fields. Admin only.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /projects [get]
func (c *ProjectController) GetAllProjects(ctx *gin.Context) {
	projects, err := c.projectService.GetAllProjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects))
}

// GetMyProject returns the caller's own project
// @Summary Get own project
// @Description Returns the caller's project entry, review fields included
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "No project submitted yet"
// @Router /projects/mine [get]
func (c *ProjectController) GetMyProject(ctx *gin.Context) {
	userID, _, _ := middleware.CallerIdentity(ctx)
	project, err := c.projectService.GetProjectByUserID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// SubmitProject creates or updates the caller's project
// @Summary Submit a project
// @Description Creates the caller's project on first call and merges the submitted fields on later calls. Review fields are never touched.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitProjectRequest true "Project details"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project updated"
// @Success 201 {object} dto.APIResponse{data=models.Project} "Project created"
// @Failure 400 {object} dto.ErrorResponse "Invalid GitHub URL"
// @Failure 403 {object} dto.ErrorResponse "Submissions are closed"
// @Router /projects [post]
func (c *ProjectController) SubmitProject(ctx *gin.Context) {
	var req dto.SubmitProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, userName, _ := middleware.CallerIdentity(ctx)
	project, created, err := c.projectService.Submit(ctx, userID, userName, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewSuccessResponse(project))
}

// ReviewProject applies admin rating, score and feedback
// @Summary Review a project
// @Description Sets rating, score and feedback on a project. Admin only.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body dto.ReviewProjectRequest true "Review fields"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Review stored"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id}/review [put]
func (c *ProjectController) ReviewProject(ctx *gin.Context) {
	var req dto.ReviewProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	project, err := c.projectService.Review(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// DeleteProject removes a project
// @Summary Delete a project
// @Description Removes a project. Owner or admin only.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Project deleted"
// @Failure 403 {object} dto.ErrorResponse "Caller is neither owner nor admin"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	callerID, _, _ := middleware.CallerIdentity(ctx)
	if err := c.projectService.Delete(ctx, ctx.Param("id"), callerID, middleware.IsAdmin(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Project deleted successfully"))
}
