package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/middleware"
)

// SettingsController handles the singleton workshop configuration
type SettingsController struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsRepo repositories.SettingsRepository) *SettingsController {
	return &SettingsController{settingsRepo: settingsRepo}
}

// GetSettings returns the workshop settings
// @Summary Get workshop settings
// @Description Returns the settings record, creating it with defaults when absent
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Settings} "Settings retrieved successfully"
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsRepo.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(settings))
}

// UpdateSettings applies a partial settings update
// @Summary Update workshop settings
// @Description Changes the provided fields; omitted fields keep their value. Admin only.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Settings} "Settings updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /settings [put]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	settings, err := c.settingsRepo.Update(ctx, repositories.SettingsUpdate{
		SubmissionsEnabled: req.SubmissionsEnabled,
		WorkshopEndTime:    req.WorkshopEndTime,
		Announcement:       req.Announcement,
		GalleryPublic:      req.GalleryPublic,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(settings))
}
