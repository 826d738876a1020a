package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/models"
	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/middleware"
)

// GalleryController handles the workshop media gallery
type GalleryController struct {
	galleryRepo  repositories.GalleryRepository
	settingsRepo repositories.SettingsRepository
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryRepo repositories.GalleryRepository, settingsRepo repositories.SettingsRepository) *GalleryController {
	return &GalleryController{
		galleryRepo:  galleryRepo,
		settingsRepo: settingsRepo,
	}
}

// GetGallery lists every gallery item
// @Summary Get all gallery items
// @Description Lists every gallery item, hidden ones included. Authenticated users only.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryItem} "Items retrieved successfully"
// @Router /gallery [get]
func (c *GalleryController) GetGallery(ctx *gin.Context) {
	items, err := c.galleryRepo.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// GetPublicGallery lists the publicly visible items without authentication
// @Summary Get the public gallery
// @Description Returns visible items when the gallery is public. An empty list is returned while the gallery is private.
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryItem} "Public items retrieved successfully"
// @Router /gallery/public [get]
func (c *GalleryController) GetPublicGallery(ctx *gin.Context) {
	settings, err := c.settingsRepo.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	visible := make([]*models.GalleryItem, 0)
	if settings.GalleryPublic {
		items, err := c.galleryRepo.GetAll(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		for _, item := range items {
			if item.PublicVisible {
				visible = append(visible, item)
			}
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(visible))
}

// CreateGalleryItem adds a media item
// @Summary Add a gallery item
// @Description Adds a photo or clip to the gallery. Admin only.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGalleryItemRequest true "Item details"
// @Success 201 {object} dto.APIResponse{data=models.GalleryItem} "Item created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /gallery [post]
func (c *GalleryController) CreateGalleryItem(ctx *gin.Context) {
	var req dto.CreateGalleryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	itemType := models.GalleryItemType(req.Type)
	if itemType == "" {
		itemType = models.GalleryItemImage
	}

	item := &models.GalleryItem{
		Filename:      req.Filename,
		URL:           req.URL,
		Type:          itemType,
		Caption:       req.Caption,
		PublicVisible: req.PublicVisible,
	}
	if err := c.galleryRepo.Create(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// UpdateGalleryItem applies a partial update to an item
// @Summary Update a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body dto.UpdateGalleryItemRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.GalleryItem} "Item updated"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /gallery/{id} [put]
func (c *GalleryController) UpdateGalleryItem(ctx *gin.Context) {
	var req dto.UpdateGalleryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	update := repositories.GalleryItemUpdate{
		Filename:      req.Filename,
		URL:           req.URL,
		Caption:       req.Caption,
		PublicVisible: req.PublicVisible,
	}
	if req.Type != nil {
		t := models.GalleryItemType(*req.Type)
		update.Type = &t
	}

	item, err := c.galleryRepo.Update(ctx, ctx.Param("id"), update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// ToggleVisibility flips an item's public visibility
// @Summary Toggle gallery item visibility
// @Description Flips publicVisible without touching the rest of the record. Admin only.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} dto.APIResponse{data=models.GalleryItem} "Visibility toggled"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /gallery/{id}/visibility [put]
func (c *GalleryController) ToggleVisibility(ctx *gin.Context) {
	item, err := c.galleryRepo.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	visible := !item.PublicVisible
	updated, err := c.galleryRepo.Update(ctx, item.ID, repositories.GalleryItemUpdate{
		PublicVisible: &visible,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(updated))
}

// DeleteGalleryItem removes an item
// @Summary Delete a gallery item
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Item deleted"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /gallery/{id} [delete]
func (c *GalleryController) DeleteGalleryItem(ctx *gin.Context) {
	if err := c.galleryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Gallery item deleted successfully"))
}
