package brightsky

import "encoding/json"

// Raw API payloads. Every upstream field is optional: Bright Sky omits or
// nulls fields depending on the reporting station, so all leaf fields are
// pointers and may be nil after decoding.

// CurrentWeatherPayload is the /current_weather response.
type CurrentWeatherPayload struct {
	Weather *CurrentRecord `json:"weather"`
	Sources []Source       `json:"sources"`
}

// CurrentRecord is a single current-weather observation.
type CurrentRecord struct {
	Timestamp           *string  `json:"timestamp"`
	Temperature         *float64 `json:"temperature"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	RelativeHumidity    *float64 `json:"relative_humidity"`
	WindSpeed10         *float64 `json:"wind_speed_10"`
	WindDirection10     *float64 `json:"wind_direction_10"`
	WindGustSpeed10     *float64 `json:"wind_gust_speed_10"`
	Precipitation10     *float64 `json:"precipitation_10"`
	PressureMSL         *float64 `json:"pressure_msl"`
	Visibility          *float64 `json:"visibility"`
	CloudCover          *float64 `json:"cloud_cover"`
	DewPoint            *float64 `json:"dew_point"`
	Condition           *string  `json:"condition"`
	Icon                *string  `json:"icon"`
}

// ForecastPayload is the /weather response.
type ForecastPayload struct {
	Weather []HourlyRecord `json:"weather"`
	Sources []Source       `json:"sources"`
}

// HourlyRecord is one forecast time slice.
type HourlyRecord struct {
	Timestamp                *string  `json:"timestamp"`
	Temperature              *float64 `json:"temperature"`
	Precipitation            *float64 `json:"precipitation"`
	PrecipitationProbability *float64 `json:"precipitation_probability"`
	WindSpeed                *float64 `json:"wind_speed"`
	WindDirection            *float64 `json:"wind_direction"`
	CloudCover               *float64 `json:"cloud_cover"`
	Condition                *string  `json:"condition"`
	Icon                     *string  `json:"icon"`
}

// AlertsPayload is the /alerts response.
type AlertsPayload struct {
	Alerts []Alert `json:"alerts"`
}

// Alert is a DWD weather alert with bilingual fields.
type Alert struct {
	Headline      *string         `json:"headline"`
	HeadlineDE    *string         `json:"headline_de"`
	Severity      *string         `json:"severity"`
	Event         *string         `json:"event"`
	EventDE       *string         `json:"event_de"`
	Description   *string         `json:"description"`
	DescriptionDE *string         `json:"description_de"`
	Instruction   *string         `json:"instruction"`
	InstructionDE *string         `json:"instruction_de"`
	Onset         *string         `json:"onset"`
	Expires       *string         `json:"expires"`
	Effective     *string         `json:"effective"`
	Locations     []AlertLocation `json:"locations"`
}

// AlertLocation is one region affected by an alert.
type AlertLocation struct {
	Name     *string `json:"name"`
	District *string `json:"district"`
	State    *string `json:"state"`
}

// SourcesPayload is the /sources response.
type SourcesPayload struct {
	Sources []Source `json:"sources"`
}

// Source describes a DWD weather station.
type Source struct {
	StationName     *string    `json:"station_name"`
	DWDStationID    *string    `json:"dwd_station_id"`
	Distance        *float64   `json:"distance"`
	Lat             *float64   `json:"lat"`
	Lon             *float64   `json:"lon"`
	ObservationType StringList `json:"observation_type"`
}

// StringList tolerates the upstream observation_type field arriving either
// as a single string or as an array of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*s = StringList{single}
		return nil
	}
	// Unexpected shape; treat as absent rather than failing the payload.
	*s = nil
	return nil
}
