package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/middleware"
)

// CertificateController handles issued certificates
type CertificateController struct {
	certificateRepo repositories.CertificateRepository
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateRepo repositories.CertificateRepository) *CertificateController {
	return &CertificateController{certificateRepo: certificateRepo}
}

// GetAllCertificates lists every issued certificate
// @Summary Get all certificates
// @Description Lists every issued certificate. Admin only.
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Certificate} "Certificates retrieved successfully"
// @Router /certificates [get]
func (c *CertificateController) GetAllCertificates(ctx *gin.Context) {
	certs, err := c.certificateRepo.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(certs))
}

// GetMyCertificates lists certificates issued to the caller
// @Summary Get own certificates
// @Description Lists certificates whose studentId matches the caller's login identifier
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Certificate} "Certificates retrieved successfully"
// @Router /certificates/mine [get]
func (c *CertificateController) GetMyCertificates(ctx *gin.Context) {
	userID, _, _ := middleware.CallerIdentity(ctx)
	certs, err := c.certificateRepo.GetByStudentID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(certs))
}

// CreateCertificate records an issued certificate
// @Summary Add a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCertificateRequest true "Certificate details"
// @Success 201 {object} dto.APIResponse{data=models.Certificate} "Certificate created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /certificates [post]
func (c *CertificateController) CreateCertificate(ctx *gin.Context) {
	var req dto.CreateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	cert := &models.Certificate{
		StudentName:     req.StudentName,
		StudentID:       req.StudentID,
		CertificateURL:  req.CertificateURL,
		CertificateType: req.CertificateType,
		IssuedBy:        req.IssuedBy,
	}
	if err := c.certificateRepo.Create(ctx, cert); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(cert))
}

// DeleteCertificate removes a certificate record
// @Summary Delete a certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Certificate deleted"
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Router /certificates/{id} [delete]
func (c *CertificateController) DeleteCertificate(ctx *gin.Context) {
	if err := c.certificateRepo.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Certificate deleted successfully"))
}
