package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
)

// weatherHandler proxies reduced forecasts from the external provider.
type weatherHandler struct {
	weatherService portssvc.WeatherSvcFacade
}

func newWeatherHandler(ws portssvc.WeatherSvcFacade) *weatherHandler {
	return &weatherHandler{weatherService: ws}
}

// registerWeatherRoutes registers the weather routes.
func registerWeatherRoutes(rg *gin.RouterGroup, weatherService portssvc.WeatherSvcFacade) {
	h := newWeatherHandler(weatherService)
	rg.GET("/weather/forecast", h.forecast)
}

// forecast godoc
// @Summary Get a forecast
// @Description Retrieves a reduced multi-day forecast for a city or "lat,lon"
// @Tags weather
// @Produce json
// @Param q query string true "City name or lat,lon"
// @Param days query int false "Forecast days 1-7 (default 3)"
// @Success 200 {object} domain.Forecast
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 502 {object} map[string]string "Provider failure"
// @Security BearerAuth
// @Router /weather/forecast [get]
func (h *weatherHandler) forecast(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "3"))

	forecast, err := h.weatherService.GetForecast(c.Request.Context(), c.Query("q"), days)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch forecast")
		return
	}
	c.JSON(http.StatusOK, forecast)
}
