package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const nominatimUserAgent = "dwd-mcp-server/0.1.0 (https://github.com/dwdmcp/dwd-mcp-server)"

// NominatimClient implements CityGeocoder against the Nominatim
// (OpenStreetMap) search API, biased toward German results.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL:   baseURL,
		userAgent: nominatimUserAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search looks up a query and returns the first result. Failures are
// reported as *GeocodingError, with distinct wording for "not found" and
// transport/API failures.
func (c *NominatimClient) Search(ctx context.Context, query string) (Coordinates, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("format", "json")
	values.Set("limit", "1")
	values.Set("countrycodes", "de")

	u := fmt.Sprintf("%s/search?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Coordinates{}, &GeocodingError{Message: fmt.Sprintf("Nominatim API request failed: %v", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return Coordinates{}, &GeocodingError{Message: fmt.Sprintf("Nominatim API request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Coordinates{}, &GeocodingError{
			Message: fmt.Sprintf("Nominatim API request failed: status %d", resp.StatusCode),
		}
	}

	// Nominatim returns lat/lon as strings.
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinates{}, &GeocodingError{Message: fmt.Sprintf("Nominatim API request failed: %v", err)}
	}

	if len(results) == 0 {
		return Coordinates{}, &GeocodingError{
			Message: fmt.Sprintf("Location '%s' not found. Try using coordinates (lat,lon) or a known German city name.", query),
		}
	}

	lat, err1 := strconv.ParseFloat(results[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(results[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return Coordinates{}, &GeocodingError{Message: "Nominatim API request failed: malformed coordinates in response"}
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}
