package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/middleware"
)

// marketHandler serves the daily commodity price listings.
type marketHandler struct {
	marketService portssvc.MarketSvcFacade
}

func newMarketHandler(ms portssvc.MarketSvcFacade) *marketHandler {
	return &marketHandler{marketService: ms}
}

// registerMarketRoutes registers the market price routes. The sync endpoint is
// restricted to operational roles.
func registerMarketRoutes(rg *gin.RouterGroup, marketService portssvc.MarketSvcFacade) {
	h := newMarketHandler(marketService)

	market := rg.Group("/market")
	{
		market.GET("/prices", h.listPrices)
		market.POST("/sync", middleware.RequireRole("employee", "admin"), h.sync)
	}
}

// listPrices godoc
// @Summary List market prices
// @Description Retrieves prices filtered by commodity, market, state and category
// @Tags market
// @Produce json
// @Param commodity query string false "Commodity filter"
// @Param market query string false "Market filter"
// @Param state query string false "State filter"
// @Param category query string false "Category filter"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} dto.ListMarketPricesResponse
// @Security BearerAuth
// @Router /market/prices [get]
func (h *marketHandler) listPrices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filters := domain.MarketFilters{
		Commodity: c.Query("commodity"),
		Market:    c.Query("market"),
		State:     c.Query("state"),
		Category:  c.Query("category"),
		Page:      page,
		Limit:     limit,
	}

	prices, meta, err := h.marketService.ListPrices(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err, "Failed to list market prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMarketPricesResponse(prices, meta, page, limit))
}

// sync godoc
// @Summary Run the daily price sync
// @Description Generates and upserts the price set for a day; idempotent per day
// @Tags market
// @Produce json
// @Param date query string false "Day to sync (YYYY-MM-DD, default today)"
// @Success 200 {object} dto.MarketSyncResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /market/sync [post]
func (h *marketHandler) sync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Query("date")

	stats, err := h.marketService.SyncDaily(c.Request.Context(), date)
	if err != nil {
		logger.Error("Market sync failed", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to sync market prices")
		return
	}
	c.JSON(http.StatusOK, dto.MarketSyncResponse{
		Success: true,
		Message: "market prices synced",
		Stats:   *stats,
		Date:    date,
	})
}
