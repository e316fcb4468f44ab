// Package weather composes location resolution, the Bright Sky client and
// the payload transforms into the four user-facing operations.
package weather

import (
	"context"
	"log/slog"

	"github.com/dwdmcp/dwd-mcp-server/internal/brightsky"
	"github.com/dwdmcp/dwd-mcp-server/internal/geocoding"
)

// NationwideQuery is the location_query value used when alerts are fetched
// without a location.
const NationwideQuery = "Deutschland (alle Warnungen)"

// CurrentWeatherResult is the current-weather output plus query metadata.
type CurrentWeatherResult struct {
	brightsky.CurrentWeather
	LocationQuery string                `json:"location_query"`
	Coordinates   geocoding.Coordinates `json:"coordinates"`
}

// ForecastResult is the forecast output plus query metadata.
type ForecastResult struct {
	brightsky.Forecast
	LocationQuery string                `json:"location_query"`
	Coordinates   geocoding.Coordinates `json:"coordinates"`
	DaysRequested int                   `json:"days_requested"`
}

// AlertsResult is the alerts output plus query metadata. Coordinates are
// omitted for nationwide queries.
type AlertsResult struct {
	brightsky.Alerts
	LocationQuery string                 `json:"location_query"`
	Coordinates   *geocoding.Coordinates `json:"coordinates,omitempty"`
}

// StationsResult is the station-search output plus query metadata.
type StationsResult struct {
	brightsky.Stations
	LocationQuery string                `json:"location_query"`
	Coordinates   geocoding.Coordinates `json:"coordinates"`
}

// Service runs one stateless resolve-fetch-format cycle per call. Failures
// surface as *geocoding.GeocodingError or *brightsky.APIError.
type Service struct {
	resolver *geocoding.Resolver
	client   *brightsky.Client
	logger   *slog.Logger
}

func NewService(resolver *geocoding.Resolver, client *brightsky.Client, logger *slog.Logger) *Service {
	return &Service{
		resolver: resolver,
		client:   client,
		logger:   logger,
	}
}

// CurrentWeather resolves the location and fetches current conditions.
func (s *Service) CurrentWeather(ctx context.Context, location string) (*CurrentWeatherResult, error) {
	coords, err := s.resolver.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetching current weather", "location", location, "lat", coords.Lat, "lon", coords.Lon)

	raw, err := s.client.CurrentWeather(ctx, coords.Lat, coords.Lon)
	if err != nil {
		return nil, err
	}

	return &CurrentWeatherResult{
		CurrentWeather: brightsky.FormatCurrentWeather(raw),
		LocationQuery:  location,
		Coordinates:    coords,
	}, nil
}

// Forecast resolves the location and fetches the hourly forecast with daily
// summaries. days is recorded as requested; the client clamps it to [1,10].
func (s *Service) Forecast(ctx context.Context, location string, days int) (*ForecastResult, error) {
	coords, err := s.resolver.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetching forecast", "location", location, "days", days)

	raw, err := s.client.Forecast(ctx, coords.Lat, coords.Lon, days)
	if err != nil {
		return nil, err
	}

	return &ForecastResult{
		Forecast:      brightsky.FormatForecast(raw),
		LocationQuery: location,
		Coordinates:   coords,
		DaysRequested: days,
	}, nil
}

// Alerts fetches weather alerts. An empty location queries nationwide.
func (s *Service) Alerts(ctx context.Context, location string) (*AlertsResult, error) {
	var lat, lon *float64
	var coords *geocoding.Coordinates

	if location != "" {
		resolved, err := s.resolver.Resolve(ctx, location)
		if err != nil {
			return nil, err
		}
		coords = &resolved
		lat, lon = &resolved.Lat, &resolved.Lon
	}

	s.logger.Debug("fetching alerts", "location", location, "nationwide", location == "")

	raw, err := s.client.Alerts(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	result := &AlertsResult{
		Alerts:      brightsky.FormatAlerts(raw),
		Coordinates: coords,
	}
	if location != "" {
		result.LocationQuery = location
	} else {
		result.LocationQuery = NationwideQuery
	}
	return result, nil
}

// FindStations resolves the location and searches for nearby stations.
func (s *Service) FindStations(ctx context.Context, location string) (*StationsResult, error) {
	coords, err := s.resolver.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("finding stations", "location", location)

	raw, err := s.client.Sources(ctx, coords.Lat, coords.Lon, brightsky.DefaultMaxDist)
	if err != nil {
		return nil, err
	}

	return &StationsResult{
		Stations:      brightsky.FormatSources(raw),
		LocationQuery: location,
		Coordinates:   coords,
	}, nil
}
