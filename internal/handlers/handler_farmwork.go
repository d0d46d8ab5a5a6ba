package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/middleware"
)

// farmWorkHandler handles HTTP requests for the farm work lifecycle.
type farmWorkHandler struct {
	workService portssvc.FarmWorkSvcFacade
}

func newFarmWorkHandler(ws portssvc.FarmWorkSvcFacade) *farmWorkHandler {
	return &farmWorkHandler{workService: ws}
}

// registerFarmWorkRoutes registers the farm work and dashboard routes.
func registerFarmWorkRoutes(rg *gin.RouterGroup, workService portssvc.FarmWorkSvcFacade) {
	h := newFarmWorkHandler(workService)

	works := rg.Group("/farm-works")
	{
		works.POST("", middleware.RequireRole("farmer"), h.postWork)
		works.GET("/mine", middleware.RequireRole("farmer"), h.listMine)
		works.GET("/available", middleware.RequireRole("labour"), h.listAvailable)
		works.GET("/applied", middleware.RequireRole("labour"), h.listApplied)
		works.GET("/:id", h.getWork)
		works.POST("/:id/apply", middleware.RequireRole("labour"), h.apply)
		works.POST("/:id/withdraw", middleware.RequireRole("labour"), h.withdraw)
		works.POST("/:id/cancel", middleware.RequireRole("farmer"), h.cancel)
		works.DELETE("/:id", middleware.RequireRole("farmer"), h.deleteWork)
		works.POST("/sweep", middleware.RequireRole("employee", "admin"), h.sweep)
	}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/farmer", middleware.RequireRole("farmer"), h.farmerDashboard)
		dashboard.GET("/labour", middleware.RequireRole("labour"), h.labourDashboard)
	}
}

// postWork godoc
// @Summary Post new farm work
// @Description Creates a posting for a crop registered on the farmer's profile
// @Tags farm-works
// @Accept json
// @Produce json
// @Param work body dto.CreateFarmWorkRequest true "Posting details"
// @Success 201 {object} dto.FarmWorkResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /farm-works [post]
func (h *farmWorkHandler) postWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFarmWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postWork", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	farmer, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	work, err := h.workService.PostWork(c.Request.Context(), farmer, req)
	if err != nil {
		logger.Warn("Failed to post farm work", slog.String("farmer", farmer), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to post farm work")
		return
	}

	logger.Info("Farm work posted", slog.String("work_id", work.WorkID))
	c.JSON(http.StatusCreated, dto.ToFarmWorkResponse(work))
}

// getWork godoc
// @Summary Get a posting
// @Description Retrieves a single farm work posting by ID
// @Tags farm-works
// @Produce json
// @Param id path string true "Work ID"
// @Success 200 {object} dto.FarmWorkResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /farm-works/{id} [get]
func (h *farmWorkHandler) getWork(c *gin.Context) {
	work, err := h.workService.GetWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve farm work")
		return
	}
	c.JSON(http.StatusOK, dto.ToFarmWorkResponse(work))
}

// listMine godoc
// @Summary List own postings
// @Description Retrieves every posting created by the calling farmer
// @Tags farm-works
// @Produce json
// @Success 200 {object} dto.ListFarmWorksResponse
// @Security BearerAuth
// @Router /farm-works/mine [get]
func (h *farmWorkHandler) listMine(c *gin.Context) {
	farmer, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	works, err := h.workService.ListFarmerWorks(c.Request.Context(), farmer)
	if err != nil {
		respondServiceError(c, err, "Failed to list farm works")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFarmWorksResponse(works))
}

// listAvailable godoc
// @Summary List available postings
// @Description Retrieves open postings in the labourer's area they have not applied to
// @Tags farm-works
// @Produce json
// @Success 200 {object} dto.ListFarmWorksResponse
// @Security BearerAuth
// @Router /farm-works/available [get]
func (h *farmWorkHandler) listAvailable(c *gin.Context) {
	labour, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	works, err := h.workService.ListAvailableWorks(c.Request.Context(), labour)
	if err != nil {
		respondServiceError(c, err, "Failed to list available works")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFarmWorksResponse(works))
}

// listApplied godoc
// @Summary List applied postings
// @Description Retrieves postings the calling labourer has applied to
// @Tags farm-works
// @Produce json
// @Success 200 {object} dto.ListFarmWorksResponse
// @Security BearerAuth
// @Router /farm-works/applied [get]
func (h *farmWorkHandler) listApplied(c *gin.Context) {
	labour, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	works, err := h.workService.ListAppliedWorks(c.Request.Context(), labour)
	if err != nil {
		respondServiceError(c, err, "Failed to list applied works")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFarmWorksResponse(works))
}

// apply godoc
// @Summary Apply to a posting
// @Description Appends the labourer's application; capacity is enforced atomically
// @Tags farm-works
// @Accept json
// @Produce json
// @Param id path string true "Work ID"
// @Param application body dto.ApplyToWorkRequest true "Contact details"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Fully booked, duplicate, or not active"
// @Failure 422 {object} map[string]string "Application deadline passed"
// @Security BearerAuth
// @Router /farm-works/{id}/apply [post]
func (h *farmWorkHandler) apply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyToWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	labour, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workID := c.Param("id")
	err := h.workService.Apply(c.Request.Context(), workID, labour, req.Name, req.FullName, req.Mobile)
	if err != nil {
		logger.Warn("Application failed",
			slog.String("work_id", workID), slog.String("labour", labour), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to apply")
		return
	}

	logger.Info("Application recorded", slog.String("work_id", workID), slog.String("labour", labour))
	c.JSON(http.StatusOK, gin.H{"applied": true})
}

// withdraw godoc
// @Summary Withdraw an application
// @Description Removes the labourer's application before the day-before cutoff
// @Tags farm-works
// @Produce json
// @Param id path string true "Work ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Not found"
// @Failure 422 {object} map[string]string "Withdrawal deadline passed"
// @Security BearerAuth
// @Router /farm-works/{id}/withdraw [post]
func (h *farmWorkHandler) withdraw(c *gin.Context) {
	labour, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workID := c.Param("id")
	if err := h.workService.Withdraw(c.Request.Context(), workID, labour); err != nil {
		respondServiceError(c, err, "Failed to withdraw")
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawn": true})
}

// cancel godoc
// @Summary Cancel a posting
// @Description Moves the farmer's active posting to cancelled and notifies applicants
// @Tags farm-works
// @Produce json
// @Param id path string true "Work ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 422 {object} map[string]string "Cancellation deadline passed"
// @Security BearerAuth
// @Router /farm-works/{id}/cancel [post]
func (h *farmWorkHandler) cancel(c *gin.Context) {
	farmer, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workID := c.Param("id")
	if err := h.workService.Cancel(c.Request.Context(), workID, farmer); err != nil {
		respondServiceError(c, err, "Failed to cancel")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// deleteWork godoc
// @Summary Delete a posting
// @Description Removes a completed or cancelled posting owned by the farmer
// @Tags farm-works
// @Produce json
// @Param id path string true "Work ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Posting still active"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /farm-works/{id} [delete]
func (h *farmWorkHandler) deleteWork(c *gin.Context) {
	farmer, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.workService.Delete(c.Request.Context(), c.Param("id"), farmer); err != nil {
		respondServiceError(c, err, "Failed to delete")
		return
	}
	c.Status(http.StatusNoContent)
}

// sweep godoc
// @Summary Run the expiry sweep
// @Description Completes every active posting whose work date has passed; idempotent
// @Tags farm-works
// @Produce json
// @Success 200 {object} dto.SweepResponse
// @Security BearerAuth
// @Router /farm-works/sweep [post]
func (h *farmWorkHandler) sweep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	count, err := h.workService.SweepExpired(c.Request.Context())
	if err != nil {
		logger.Error("Expiry sweep failed", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to run sweep")
		return
	}
	c.JSON(http.StatusOK, dto.SweepResponse{Success: true, UpdatedCount: count})
}

// farmerDashboard godoc
// @Summary Farmer dashboard
// @Description Partitions the farmer's postings into active and past, with totals
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.FarmerDashboardResponse
// @Security BearerAuth
// @Router /dashboard/farmer [get]
func (h *farmWorkHandler) farmerDashboard(c *gin.Context) {
	farmer, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dashboard, err := h.workService.FarmerDashboard(c.Request.Context(), farmer)
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToFarmerDashboardResponse(dashboard))
}

// labourDashboard godoc
// @Summary Labour dashboard
// @Description Summarises the labourer's applied and available postings
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.LabourDashboardResponse
// @Security BearerAuth
// @Router /dashboard/labour [get]
func (h *farmWorkHandler) labourDashboard(c *gin.Context) {
	labour, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dashboard, err := h.workService.LabourDashboard(c.Request.Context(), labour)
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToLabourDashboardResponse(dashboard))
}
