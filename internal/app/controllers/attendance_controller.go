package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/middleware"
)

// AttendanceController handles attendance tracking. The operations are plain
// CRUD, so it talks to the repository directly.
type AttendanceController struct {
	attendanceRepo repositories.AttendanceRepository
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceRepo repositories.AttendanceRepository) *AttendanceController {
	return &AttendanceController{attendanceRepo: attendanceRepo}
}

// GetAllAttendance lists every attendance record
// @Summary Get all attendance records
// @Description Lists every attendance record. Admin only.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Records retrieved successfully"
// @Router /attendance [get]
func (c *AttendanceController) GetAllAttendance(ctx *gin.Context) {
	records, err := c.attendanceRepo.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// CreateAttendance records presence for one participant
// @Summary Create an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAttendanceRequest true "Attendance details"
// @Success 201 {object} dto.APIResponse{data=models.Attendance} "Record created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /attendance [post]
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	record := &models.Attendance{
		ParticipantName: req.ParticipantName,
		StudentID:       req.StudentID,
		TeamName:        req.TeamName,
		Email:           req.Email,
		FirstHalf:       req.FirstHalf,
		SecondHalf:      req.SecondHalf,
		Remarks:         req.Remarks,
	}
	if err := c.attendanceRepo.Create(ctx, record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record))
}

// UpdateAttendance applies a partial update to a record
// @Summary Update an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body dto.UpdateAttendanceRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Record updated"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	record, err := c.attendanceRepo.Update(ctx, ctx.Param("id"), repositories.AttendanceUpdate{
		ParticipantName: req.ParticipantName,
		StudentID:       req.StudentID,
		TeamName:        req.TeamName,
		Email:           req.Email,
		FirstHalf:       req.FirstHalf,
		SecondHalf:      req.SecondHalf,
		Remarks:         req.Remarks,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// DeleteAttendance removes a record
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Record deleted"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	if err := c.attendanceRepo.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Attendance record deleted successfully"))
}
