package brightsky

import (
	"fmt"
	"math"
	"time"
)

// windDirections maps degree sectors to German compass labels. Sectors are
// half-open [start, end); the wrap-around north sector is split in two.
var windDirections = []struct {
	label string
	start float64
	end   float64
}{
	{"N", 0, 22.5},
	{"NO", 22.5, 67.5},
	{"O", 67.5, 112.5},
	{"SO", 112.5, 157.5},
	{"S", 157.5, 202.5},
	{"SW", 202.5, 247.5},
	{"W", 247.5, 292.5},
	{"NW", 292.5, 337.5},
	{"N", 337.5, 360},
}

// WindDirectionText converts a wind direction in degrees to the German
// compass abbreviation. nil degrees yield "unbekannt".
func WindDirectionText(degrees *float64) string {
	if degrees == nil {
		return "unbekannt"
	}

	d := math.Mod(*degrees, 360)
	if d < 0 {
		d += 360
	}
	for _, sector := range windDirections {
		if d >= sector.start && d < sector.end {
			return sector.label
		}
	}
	return "N"
}

var weekdayAbbrevs = [...]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
}

// FormatTimestamp renders an ISO 8601 timestamp as a German display string,
// e.g. "Sa, 15.02.2026 14:00". nil or empty input yields "unbekannt";
// unparseable input is returned unchanged.
func FormatTimestamp(iso *string) string {
	if iso == nil || *iso == "" {
		return "unbekannt"
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *iso); err == nil {
			return fmt.Sprintf("%s, %s", weekdayAbbrevs[t.Weekday()], t.Format("02.01.2006 15:04"))
		}
	}
	return *iso
}

// CurrentWeather is the agent-facing view of a current-weather observation.
// Pointer fields stay nil (JSON null) when the station did not report them.
type CurrentWeather struct {
	Timestamp            string   `json:"timestamp"`
	TemperatureC         *float64 `json:"temperature_c"`
	FeelsLikeC           *float64 `json:"feels_like_c"`
	HumidityPercent      *float64 `json:"humidity_percent"`
	WindSpeedKmh         *float64 `json:"wind_speed_kmh"`
	WindDirection        string   `json:"wind_direction"`
	WindDirectionDegrees *float64 `json:"wind_direction_degrees"`
	WindGustKmh          *float64 `json:"wind_gust_kmh"`
	PrecipitationMm      *float64 `json:"precipitation_mm"`
	PressureHpa          *float64 `json:"pressure_hpa"`
	VisibilityM          *float64 `json:"visibility_m"`
	CloudCoverPercent    *float64 `json:"cloud_cover_percent"`
	DewPointC            *float64 `json:"dew_point_c"`
	Condition            *string  `json:"condition"`
	Icon                 *string  `json:"icon"`
	StationName          *string  `json:"station_name"`
	StationDistanceM     *float64 `json:"station_distance_m"`
}

// FormatCurrentWeather flattens a /current_weather payload into the
// agent-facing shape, taking station metadata from the first source entry.
func FormatCurrentWeather(data *CurrentWeatherPayload) CurrentWeather {
	weather := data.Weather
	if weather == nil {
		weather = &CurrentRecord{}
	}

	var station Source
	if len(data.Sources) > 0 {
		station = data.Sources[0]
	}

	return CurrentWeather{
		Timestamp:            FormatTimestamp(weather.Timestamp),
		TemperatureC:         weather.Temperature,
		FeelsLikeC:           weather.ApparentTemperature,
		HumidityPercent:      weather.RelativeHumidity,
		WindSpeedKmh:         weather.WindSpeed10,
		WindDirection:        WindDirectionText(weather.WindDirection10),
		WindDirectionDegrees: weather.WindDirection10,
		WindGustKmh:          weather.WindGustSpeed10,
		PrecipitationMm:      weather.Precipitation10,
		PressureHpa:          weather.PressureMSL,
		VisibilityM:          weather.Visibility,
		CloudCoverPercent:    weather.CloudCover,
		DewPointC:            weather.DewPoint,
		Condition:            weather.Condition,
		Icon:                 weather.Icon,
		StationName:          station.StationName,
		StationDistanceM:     station.Distance,
	}
}

// FormattedAlert is the agent-facing view of one alert. The unprefixed
// fields prefer the German variant and fall back to the base (English) one.
type FormattedAlert struct {
	Headline    *string       `json:"headline"`
	HeadlineEN  *string       `json:"headline_en"`
	Severity    *string       `json:"severity"`
	Event       *string       `json:"event"`
	EventEN     *string       `json:"event_en"`
	Description *string       `json:"description"`
	Instruction *string       `json:"instruction"`
	Onset       string        `json:"onset"`
	Expires     string        `json:"expires"`
	Effective   string        `json:"effective"`
	Regions     []AlertRegion `json:"regions"`
}

// AlertRegion is one affected region.
type AlertRegion struct {
	Name     *string `json:"name"`
	District *string `json:"district"`
	State    *string `json:"state"`
}

// Alerts wraps the formatted alert list with a count.
type Alerts struct {
	AlertCount int              `json:"alert_count"`
	Alerts     []FormattedAlert `json:"alerts"`
}

// FormatAlerts reshapes an /alerts payload for agent consumption.
func FormatAlerts(data *AlertsPayload) Alerts {
	formatted := make([]FormattedAlert, 0, len(data.Alerts))
	for _, alert := range data.Alerts {
		regions := make([]AlertRegion, 0, len(alert.Locations))
		for _, loc := range alert.Locations {
			regions = append(regions, AlertRegion{
				Name:     loc.Name,
				District: loc.District,
				State:    loc.State,
			})
		}

		formatted = append(formatted, FormattedAlert{
			Headline:    preferGerman(alert.HeadlineDE, alert.Headline),
			HeadlineEN:  alert.Headline,
			Severity:    alert.Severity,
			Event:       preferGerman(alert.EventDE, alert.Event),
			EventEN:     alert.Event,
			Description: preferGerman(alert.DescriptionDE, alert.Description),
			Instruction: preferGerman(alert.InstructionDE, alert.Instruction),
			Onset:       FormatTimestamp(alert.Onset),
			Expires:     FormatTimestamp(alert.Expires),
			Effective:   FormatTimestamp(alert.Effective),
			Regions:     regions,
		})
	}

	return Alerts{
		AlertCount: len(formatted),
		Alerts:     formatted,
	}
}

// Station is the agent-facing view of one weather station.
type Station struct {
	StationName      *string  `json:"station_name"`
	StationID        *string  `json:"station_id"`
	DistanceM        *float64 `json:"distance_m"`
	Lat              *float64 `json:"lat"`
	Lon              *float64 `json:"lon"`
	ObservationTypes []string `json:"observation_types"`
}

// Stations wraps the formatted station list with a count.
type Stations struct {
	StationCount int       `json:"station_count"`
	Stations     []Station `json:"stations"`
}

// FormatSources reshapes a /sources payload for agent consumption.
func FormatSources(data *SourcesPayload) Stations {
	stations := make([]Station, 0, len(data.Sources))
	for _, source := range data.Sources {
		types := []string(source.ObservationType)
		if types == nil {
			types = []string{}
		}
		stations = append(stations, Station{
			StationName:      source.StationName,
			StationID:        source.DWDStationID,
			DistanceM:        source.Distance,
			Lat:              source.Lat,
			Lon:              source.Lon,
			ObservationTypes: types,
		})
	}

	return Stations{
		StationCount: len(stations),
		Stations:     stations,
	}
}

// preferGerman picks the German field variant when it carries a value,
// falling back to the base (English) field otherwise.
func preferGerman(de, base *string) *string {
	if de != nil && *de != "" {
		return de
	}
	return base
}
