package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
)

const (
	minForecastDays = 1
	maxForecastDays = 7
)

// weatherService serves reduced forecasts, caching raw provider payloads so
// that repeated dashboard loads do not burn provider quota.
type weatherService struct {
	BaseService
	provider portssvc.ForecastProvider
	cache    portssvc.ForecastCache
	cacheTTL time.Duration
}

// NewWeatherService creates a new weather service.
func NewWeatherService(provider portssvc.ForecastProvider, cache portssvc.ForecastCache, cacheTTL time.Duration) portssvc.WeatherSvcFacade {
	return &weatherService{provider: provider, cache: cache, cacheTTL: cacheTTL}
}

var _ portssvc.WeatherSvcFacade = (*weatherService)(nil)

// providerForecast mirrors the subset of the provider response we reduce.
type providerForecast struct {
	Location struct {
		Name      string  `json:"name"`
		Region    string  `json:"region"`
		Country   string  `json:"country"`
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
		Localtime string  `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC      float64                 `json:"temp_c"`
		FeelsLikeC float64                 `json:"feelslike_c"`
		Humidity   int                     `json:"humidity"`
		WindKph    float64                 `json:"wind_kph"`
		PrecipMM   float64                 `json:"precip_mm"`
		UV         float64                 `json:"uv"`
		Condition  domain.WeatherCondition `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC      float64                 `json:"maxtemp_c"`
				MinTempC      float64                 `json:"mintemp_c"`
				AvgTempC      float64                 `json:"avgtemp_c"`
				AvgHumidity   float64                 `json:"avghumidity"`
				ChanceOfRain  int                     `json:"daily_chance_of_rain"`
				TotalPrecipMM float64                 `json:"totalprecip_mm"`
				Condition     domain.WeatherCondition `json:"condition"`
			} `json:"day"`
			Astro struct {
				Sunrise string `json:"sunrise"`
				Sunset  string `json:"sunset"`
			} `json:"astro"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (s *weatherService) GetForecast(ctx context.Context, query string, days int) (*domain.Forecast, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationFailedError("location query is required")
	}
	if days < minForecastDays || days > maxForecastDays {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf(
			"days must be between %d and %d", minForecastDays, maxForecastDays))
	}

	cacheKey := fmt.Sprintf("%s:%d", strings.ToLower(query), days)
	payload, hit, err := s.cache.GetForecast(ctx, cacheKey)
	if err != nil {
		s.LogWarn(ctx, "forecast cache read failed", "key", cacheKey, "error", err)
	}
	if !hit {
		payload, err = s.provider.FetchForecast(ctx, query, days)
		if err != nil {
			return nil, apperrors.NewAppError(502, "weather provider request failed", err)
		}
		if err := s.cache.PutForecast(ctx, cacheKey, payload, s.cacheTTL); err != nil {
			s.LogWarn(ctx, "forecast cache write failed", "key", cacheKey, "error", err)
		}
	}

	var raw providerForecast
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, apperrors.NewAppError(502, "malformed weather provider response", err)
	}
	return reduceForecast(&raw), nil
}

func reduceForecast(raw *providerForecast) *domain.Forecast {
	f := &domain.Forecast{
		Location: domain.WeatherLocation{
			Name:      raw.Location.Name,
			Region:    raw.Location.Region,
			Country:   raw.Location.Country,
			Latitude:  raw.Location.Lat,
			Longitude: raw.Location.Lon,
			LocalTime: raw.Location.Localtime,
		},
		Current: domain.CurrentWeather{
			TempC:      raw.Current.TempC,
			FeelsLikeC: raw.Current.FeelsLikeC,
			Humidity:   raw.Current.Humidity,
			WindKph:    raw.Current.WindKph,
			PrecipMM:   raw.Current.PrecipMM,
			UV:         raw.Current.UV,
			Condition:  raw.Current.Condition,
		},
		Days: []domain.ForecastDay{},
	}
	for _, d := range raw.Forecast.ForecastDay {
		f.Days = append(f.Days, domain.ForecastDay{
			Date:          d.Date,
			MaxTempC:      d.Day.MaxTempC,
			MinTempC:      d.Day.MinTempC,
			AvgTempC:      d.Day.AvgTempC,
			AvgHumidity:   d.Day.AvgHumidity,
			ChanceOfRain:  d.Day.ChanceOfRain,
			TotalPrecipMM: d.Day.TotalPrecipMM,
			Condition:     d.Day.Condition,
			Sunrise:       d.Astro.Sunrise,
			Sunset:        d.Astro.Sunset,
		})
	}
	return f
}
