// Package geocoding resolves free-form location input to coordinates.
package geocoding

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Coordinates is a WGS 84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeocodingError is returned when a location cannot be resolved.
type GeocodingError struct {
	Message string
}

func (e *GeocodingError) Error() string {
	return e.Message
}

// coordinatePattern matches direct coordinate input: "lat,lon" or "lat, lon".
var coordinatePattern = regexp.MustCompile(`^\s*(-?\d+\.?\d*)\s*,\s*(-?\d+\.?\d*)\s*$`)

// CityGeocoder is the external fallback consulted when a location is neither
// a coordinate pair nor a known city name.
type CityGeocoder interface {
	Search(ctx context.Context, query string) (Coordinates, error)
}

// Resolver resolves a location string through three ordered tiers:
// direct coordinates, the static city table, and the external fallback.
// The first tier that matches wins.
type Resolver struct {
	fallback CityGeocoder
}

func NewResolver(fallback CityGeocoder) *Resolver {
	return &Resolver{fallback: fallback}
}

// Resolve turns a location string into coordinates or fails with a
// *GeocodingError.
func (r *Resolver) Resolve(ctx context.Context, location string) (Coordinates, error) {
	location = strings.TrimSpace(location)

	if location == "" {
		return Coordinates{}, &GeocodingError{Message: "Location cannot be empty"}
	}

	// 1. Direct coordinate input.
	if m := coordinatePattern.FindStringSubmatch(location); m != nil {
		lat, err1 := strconv.ParseFloat(m[1], 64)
		lon, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return Coordinates{}, &GeocodingError{
				Message: "Invalid coordinates: lat=" + m[1] + ", lon=" + m[2],
			}
		}
		return Coordinates{Lat: lat, Lon: lon}, nil
	}

	// 2. Static city table.
	if coords, ok := cityCoordinates(location); ok {
		return coords, nil
	}

	// 3. External fallback.
	if r.fallback == nil {
		return Coordinates{}, &GeocodingError{
			Message: "Location '" + location + "' not found. Try using coordinates (lat,lon) or a known German city name.",
		}
	}
	return r.fallback.Search(ctx, location)
}
