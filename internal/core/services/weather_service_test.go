package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/core/services"
)

// --- Mock ForecastProvider ---

type MockForecastProvider struct {
	mock.Mock
}

var _ portssvc.ForecastProvider = (*MockForecastProvider)(nil)

func (m *MockForecastProvider) FetchForecast(ctx context.Context, query string, days int) ([]byte, error) {
	args := m.Called(ctx, query, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock ForecastCache ---

type MockForecastCache struct {
	mock.Mock
}

var _ portssvc.ForecastCache = (*MockForecastCache)(nil)

func (m *MockForecastCache) GetForecast(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockForecastCache) PutForecast(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, payload, ttl)
	return args.Error(0)
}

// --- Test Suite Setup ---

type WeatherServiceTestSuite struct {
	suite.Suite
	mockProvider *MockForecastProvider
	mockCache    *MockForecastCache
	service      portssvc.WeatherSvcFacade
}

func (suite *WeatherServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockForecastProvider)
	suite.mockCache = new(MockForecastCache)
	suite.service = services.NewWeatherService(suite.mockProvider, suite.mockCache, 10*time.Minute)
}

const providerPayload = `{
	"location": {"name": "Nashik", "region": "Maharashtra", "country": "India"},
	"current": {"temp_c": 28.5, "humidity": 60, "condition": {"text": "Sunny"}},
	"forecast": {"forecastday": [
		{"date": "2026-09-02",
		 "day": {"maxtemp_c": 31.0, "mintemp_c": 22.0, "avgtemp_c": 26.5, "daily_chance_of_rain": 20, "condition": {"text": "Partly cloudy"}},
		 "astro": {"sunrise": "06:21 AM", "sunset": "06:48 PM"}}
	]}
}`

// --- Test Cases ---

func (suite *WeatherServiceTestSuite) TestGetForecast_CacheHitSkipsProvider() {
	ctx := context.Background()

	suite.mockCache.On("GetForecast", ctx, "nashik:3").
		Return([]byte(providerPayload), true, nil).Once()

	forecast, err := suite.service.GetForecast(ctx, "Nashik", 3)

	suite.Require().NoError(err)
	suite.Equal("Nashik", forecast.Location.Name)
	suite.Require().Len(forecast.Days, 1)
	suite.Equal("06:21 AM", forecast.Days[0].Sunrise)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchForecast", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WeatherServiceTestSuite) TestGetForecast_CacheMissFetchesAndStores() {
	ctx := context.Background()

	suite.mockCache.On("GetForecast", ctx, "nashik:3").Return(nil, false, nil).Once()
	suite.mockProvider.On("FetchForecast", ctx, "Nashik", 3).
		Return([]byte(providerPayload), nil).Once()
	suite.mockCache.On("PutForecast", ctx, "nashik:3", []byte(providerPayload), 10*time.Minute).
		Return(nil).Once()

	forecast, err := suite.service.GetForecast(ctx, "Nashik", 3)

	suite.Require().NoError(err)
	suite.Equal(28.5, forecast.Current.TempC)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *WeatherServiceTestSuite) TestGetForecast_ProviderFailureIsNotCached() {
	ctx := context.Background()

	suite.mockCache.On("GetForecast", ctx, "nashik:3").Return(nil, false, nil).Once()
	suite.mockProvider.On("FetchForecast", ctx, "Nashik", 3).
		Return(nil, errors.New("upstream timeout")).Once()

	forecast, err := suite.service.GetForecast(ctx, "Nashik", 3)

	suite.Nil(forecast)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(502, appErr.Code)
	suite.mockCache.AssertNotCalled(suite.T(), "PutForecast", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WeatherServiceTestSuite) TestGetForecast_RejectsBadDayRange() {
	_, err := suite.service.GetForecast(context.Background(), "Nashik", 0)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetForecast(context.Background(), "Nashik", 8)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestWeatherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WeatherServiceTestSuite))
}
