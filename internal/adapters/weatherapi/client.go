package weatherapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
)

// Client fetches forecasts from the WeatherAPI.com HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a WeatherAPI client. baseURL is the API root without a
// trailing slash, e.g. https://api.weatherapi.com/v1.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ portssvc.ForecastProvider = (*Client)(nil)

// FetchForecast retrieves the raw forecast payload for a city name or
// "lat,lon" query.
func (c *Client) FetchForecast(ctx context.Context, query string, days int) ([]byte, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("days", strconv.Itoa(days))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	endpoint := c.baseURL + "/forecast.json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}
	return body, nil
}
