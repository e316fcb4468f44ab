package brightsky

import (
	"math"
	"sort"
	"time"
)

// ForecastHour is the agent-facing view of one hourly forecast entry.
type ForecastHour struct {
	Timestamp                       string   `json:"timestamp"`
	TemperatureC                    *float64 `json:"temperature_c"`
	PrecipitationMm                 *float64 `json:"precipitation_mm"`
	PrecipitationProbabilityPercent *float64 `json:"precipitation_probability_percent"`
	WindSpeedKmh                    *float64 `json:"wind_speed_kmh"`
	WindDirection                   string   `json:"wind_direction"`
	CloudCoverPercent               *float64 `json:"cloud_cover_percent"`
	Condition                       *string  `json:"condition"`
	Icon                            *string  `json:"icon"`
}

// DailySummary aggregates all hourly entries sharing a date key.
type DailySummary struct {
	Date                               string   `json:"date"`
	Weekday                            string   `json:"weekday"`
	TempMinC                           *float64 `json:"temp_min_c"`
	TempMaxC                           *float64 `json:"temp_max_c"`
	PrecipitationTotalMm               float64  `json:"precipitation_total_mm"`
	PrecipitationProbabilityMaxPercent *float64 `json:"precipitation_probability_max_percent"`
	Condition                          *string  `json:"condition"`
}

// Forecast is the agent-facing view of a /weather payload: every hourly
// entry reshaped, plus one summary per calendar date.
type Forecast struct {
	Hourly       []ForecastHour `json:"hourly"`
	DailySummary []DailySummary `json:"daily_summary"`
	StationName  *string        `json:"station_name"`
}

// FormatForecast reshapes a /weather payload: maps each hourly entry and
// derives daily summaries grouped by the date component of the raw
// timestamp. Entries without a timestamp appear in the hourly list but are
// dropped from the daily grouping.
func FormatForecast(data *ForecastPayload) Forecast {
	var station Source
	if len(data.Sources) > 0 {
		station = data.Sources[0]
	}

	hourly := make([]ForecastHour, 0, len(data.Weather))
	for _, entry := range data.Weather {
		hourly = append(hourly, ForecastHour{
			Timestamp:                       FormatTimestamp(entry.Timestamp),
			TemperatureC:                    entry.Temperature,
			PrecipitationMm:                 entry.Precipitation,
			PrecipitationProbabilityPercent: entry.PrecipitationProbability,
			WindSpeedKmh:                    entry.WindSpeed,
			WindDirection:                   WindDirectionText(entry.WindDirection),
			CloudCoverPercent:               entry.CloudCover,
			Condition:                       entry.Condition,
			Icon:                            entry.Icon,
		})
	}

	return Forecast{
		Hourly:       hourly,
		DailySummary: aggregateDaily(data.Weather),
		StationName:  station.StationName,
	}
}

var germanWeekdays = [...]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

// aggregateDaily groups hourly entries by the first 10 characters of their
// raw timestamp (the date in the record's own offset) and computes one
// summary per distinct date key, ascending.
func aggregateDaily(entries []HourlyRecord) []DailySummary {
	grouped := make(map[string][]HourlyRecord)
	for _, entry := range entries {
		if entry.Timestamp == nil || *entry.Timestamp == "" {
			continue
		}
		key := *entry.Timestamp
		if len(key) > 10 {
			key = key[:10]
		}
		grouped[key] = append(grouped[key], entry)
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	summaries := make([]DailySummary, 0, len(keys))
	for _, date := range keys {
		group := grouped[date]

		var tempMin, tempMax *float64
		var precipSum float64
		var precipProbMax *float64

		for _, entry := range group {
			if t := entry.Temperature; t != nil {
				if tempMin == nil || *t < *tempMin {
					tempMin = t
				}
				if tempMax == nil || *t > *tempMax {
					tempMax = t
				}
			}
			if p := entry.Precipitation; p != nil {
				precipSum += *p
			}
			if p := entry.PrecipitationProbability; p != nil {
				if precipProbMax == nil || *p > *precipProbMax {
					precipProbMax = p
				}
			}
		}

		summaries = append(summaries, DailySummary{
			Date:                               date,
			Weekday:                            weekdayForDateKey(date),
			TempMinC:                           tempMin,
			TempMaxC:                           tempMax,
			PrecipitationTotalMm:               math.Round(precipSum*10) / 10,
			PrecipitationProbabilityMaxPercent: precipProbMax,
			Condition:                          dominantCondition(group),
		})
	}

	return summaries
}

// dominantCondition picks the most frequent non-nil condition in the group.
// On equal counts the condition encountered first in entry order wins.
func dominantCondition(entries []HourlyRecord) *string {
	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		if entry.Condition == nil {
			continue
		}
		c := *entry.Condition
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	var dominant *string
	best := 0
	for _, c := range order {
		if counts[c] > best {
			best = counts[c]
			cond := c
			dominant = &cond
		}
	}
	return dominant
}

// weekdayForDateKey renders the German weekday for a date key. The parse
// layout expects a full datetime with offset, so a bare YYYY-MM-DD key
// falls through and is returned as-is.
func weekdayForDateKey(date string) string {
	t, err := time.Parse("2006-01-02 15:04:05-07:00", date)
	if err != nil {
		return date
	}
	return germanWeekdays[t.Weekday()]
}
