package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/middleware"
)

// ReportController handles admin document management
type ReportController struct {
	reportRepo repositories.ReportRepository
}

// NewReportController creates a new ReportController
func NewReportController(reportRepo repositories.ReportRepository) *ReportController {
	return &ReportController{reportRepo: reportRepo}
}

// GetAllReports lists every stored document
// @Summary Get all reports
// @Description Lists every uploaded document. Admin only.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Report} "Reports retrieved successfully"
// @Router /reports [get]
func (c *ReportController) GetAllReports(ctx *gin.Context) {
	reports, err := c.reportRepo.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reports))
}

// CreateReport stores a document reference
// @Summary Add a report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReportRequest true "Document details"
// @Success 201 {object} dto.APIResponse{data=models.Report} "Report created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /reports [post]
func (c *ReportController) CreateReport(ctx *gin.Context) {
	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	report := &models.Report{
		FileName:    req.FileName,
		FileURL:     req.FileURL,
		FileType:    req.FileType,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := c.reportRepo.Create(ctx, report); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(report))
}

// DeleteReport removes a document reference
// @Summary Delete a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Report deleted"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{id} [delete]
func (c *ReportController) DeleteReport(ctx *gin.Context) {
	if err := c.reportRepo.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Report deleted successfully"))
}
