// Package brightsky is a client for the Bright Sky API, which serves open
// weather data from the DWD (Deutscher Wetterdienst), plus the transforms
// that reshape its payloads for agent consumption.
package brightsky

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// APIError is returned when a Bright Sky request fails. StatusCode is the
// upstream HTTP status, or 0 for transport-level failures.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// Client issues requests against the Bright Sky API.
type Client struct {
	baseURL  string
	timezone string
	location *time.Location
	client   *http.Client
}

// NewClient creates a Bright Sky client. The timezone is sent as the `tz`
// query parameter and used to compute forecast date ranges.
func NewClient(baseURL, timezone string, timeout time.Duration) (*Client, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Client{
		baseURL:  baseURL,
		timezone: timezone,
		location: loc,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) request(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("API request failed: %v", err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("API request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &APIError{Message: "No weather data found for the given location.", StatusCode: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			Message:    fmt.Sprintf("API request failed: %d - %s", resp.StatusCode, body),
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Message: fmt.Sprintf("API request failed: %v", err)}
	}
	return nil
}

// CurrentWeather fetches the current weather for a location.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (*CurrentWeatherPayload, error) {
	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("tz", c.timezone)

	var payload CurrentWeatherPayload
	if err := c.request(ctx, "/current_weather", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Forecast fetches hourly forecast data for a location. days is clamped to
// [1,10]; the date range starts today in the configured timezone.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) (*ForecastPayload, error) {
	if days < 1 {
		days = 1
	}
	if days > 10 {
		days = 10
	}

	now := time.Now().In(c.location)
	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("date", now.Format("2006-01-02"))
	params.Set("last_date", now.AddDate(0, 0, days).Format("2006-01-02"))
	params.Set("tz", c.timezone)

	var payload ForecastPayload
	if err := c.request(ctx, "/weather", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Alerts fetches weather alerts. With nil coordinates the query is
// nationwide; coordinates are sent only when both lat and lon are present.
func (c *Client) Alerts(ctx context.Context, lat, lon *float64) (*AlertsPayload, error) {
	params := url.Values{}
	params.Set("tz", c.timezone)
	if lat != nil && lon != nil {
		params.Set("lat", formatCoord(*lat))
		params.Set("lon", formatCoord(*lon))
	}

	var payload AlertsPayload
	if err := c.request(ctx, "/alerts", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DefaultMaxDist is the default station search radius in meters.
const DefaultMaxDist = 50000

// Sources finds weather stations near a location. maxDist <= 0 falls back
// to DefaultMaxDist.
func (c *Client) Sources(ctx context.Context, lat, lon float64, maxDist int) (*SourcesPayload, error) {
	if maxDist <= 0 {
		maxDist = DefaultMaxDist
	}

	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("max_dist", strconv.Itoa(maxDist))

	var payload SourcesPayload
	if err := c.request(ctx, "/sources", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
