package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/middleware"
)

// cropHandler handles the crops registered on farmer profiles.
type cropHandler struct {
	cropService portssvc.CropSvcFacade
}

func newCropHandler(cs portssvc.CropSvcFacade) *cropHandler {
	return &cropHandler{cropService: cs}
}

// registerCropRoutes registers the crop routes. All are farmer-only.
func registerCropRoutes(rg *gin.RouterGroup, cropService portssvc.CropSvcFacade) {
	h := newCropHandler(cropService)

	crops := rg.Group("/crops", middleware.RequireRole("farmer"))
	{
		crops.POST("", h.addCrop)
		crops.GET("", h.listCrops)
		crops.GET("/names", h.listCropNames)
		crops.DELETE("/:id", h.deleteCrop)
	}
}

// addCrop godoc
// @Summary Register a crop
// @Description Adds a crop record to the farmer's profile
// @Tags crops
// @Accept json
// @Produce json
// @Param crop body dto.AddCropRequest true "Crop details"
// @Success 201 {object} dto.CropResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /crops [post]
func (h *cropHandler) addCrop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	crop, err := h.cropService.AddCrop(c.Request.Context(), username, req)
	if err != nil {
		logger.Warn("Failed to add crop", slog.String("username", username), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to add crop")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCropResponse(crop))
}

// listCrops godoc
// @Summary List registered crops
// @Description Retrieves every crop on the farmer's profile
// @Tags crops
// @Produce json
// @Success 200 {object} dto.ListCropsResponse
// @Security BearerAuth
// @Router /crops [get]
func (h *cropHandler) listCrops(c *gin.Context) {
	username, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	crops, err := h.cropService.ListCrops(c.Request.Context(), username)
	if err != nil {
		respondServiceError(c, err, "Failed to list crops")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCropsResponse(crops))
}

// listCropNames godoc
// @Summary List crop names
// @Description Retrieves the distinct crop names on the farmer's profile
// @Tags crops
// @Produce json
// @Success 200 {object} map[string][]string
// @Security BearerAuth
// @Router /crops/names [get]
func (h *cropHandler) listCropNames(c *gin.Context) {
	username, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	names, err := h.cropService.ListCropNames(c.Request.Context(), username)
	if err != nil {
		respondServiceError(c, err, "Failed to list crop names")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cropNames": names})
}

// deleteCrop godoc
// @Summary Delete a crop
// @Description Removes a crop record owned by the farmer
// @Tags crops
// @Produce json
// @Param id path string true "Crop ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /crops/{id} [delete]
func (h *cropHandler) deleteCrop(c *gin.Context) {
	username, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.cropService.DeleteCrop(c.Request.Context(), c.Param("id"), username); err != nil {
		respondServiceError(c, err, "Failed to delete crop")
		return
	}
	c.Status(http.StatusNoContent)
}
