package services

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// WeatherSvcFacade serves reduced forecasts from the external provider,
// with short-lived caching.
type WeatherSvcFacade interface {
	// GetForecast returns the forecast for a city name or "lat,lon" pair.
	GetForecast(ctx context.Context, query string, days int) (*domain.Forecast, error)
}
