package brightsky

import (
	"testing"
)

func hourlyEntry(ts string, temp, precip *float64, condition *string) HourlyRecord {
	return HourlyRecord{
		Timestamp:     ptr(ts),
		Temperature:   temp,
		Precipitation: precip,
		Condition:     condition,
	}
}

func TestFormatForecastDailyAggregation(t *testing.T) {
	payload := &ForecastPayload{
		Weather: []HourlyRecord{
			hourlyEntry("2026-02-15T10:00:00+01:00", ptr(5.0), ptr(0.2), ptr("rain")),
			hourlyEntry("2026-02-15T11:00:00+01:00", ptr(9.0), ptr(0.3), ptr("rain")),
		},
		Sources: []Source{{StationName: ptr("Aachen-Orsbach")}},
	}

	got := FormatForecast(payload)

	if len(got.Hourly) != 2 {
		t.Fatalf("len(Hourly) = %d, want 2", len(got.Hourly))
	}
	if len(got.DailySummary) != 1 {
		t.Fatalf("len(DailySummary) = %d, want 1", len(got.DailySummary))
	}

	day := got.DailySummary[0]
	if day.Date != "2026-02-15" {
		t.Errorf("Date = %q, want 2026-02-15", day.Date)
	}
	if day.TempMinC == nil || *day.TempMinC != 5.0 {
		t.Errorf("TempMinC = %v, want 5.0", day.TempMinC)
	}
	if day.TempMaxC == nil || *day.TempMaxC != 9.0 {
		t.Errorf("TempMaxC = %v, want 9.0", day.TempMaxC)
	}
	if day.PrecipitationTotalMm != 0.5 {
		t.Errorf("PrecipitationTotalMm = %v, want 0.5", day.PrecipitationTotalMm)
	}
	if day.Condition == nil || *day.Condition != "rain" {
		t.Errorf("Condition = %v, want rain", day.Condition)
	}
	if got.StationName == nil || *got.StationName != "Aachen-Orsbach" {
		t.Errorf("StationName = %v, want Aachen-Orsbach", got.StationName)
	}
}

func TestAggregateDailySortsDateKeys(t *testing.T) {
	entries := []HourlyRecord{
		hourlyEntry("2026-02-16T08:00:00+01:00", ptr(4.0), nil, nil),
		hourlyEntry("2026-02-15T08:00:00+01:00", ptr(2.0), nil, nil),
		hourlyEntry("2026-02-17T08:00:00+01:00", ptr(6.0), nil, nil),
	}

	got := aggregateDaily(entries)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"2026-02-15", "2026-02-16", "2026-02-17"} {
		if got[i].Date != want {
			t.Errorf("summary[%d].Date = %q, want %q", i, got[i].Date, want)
		}
	}
}

func TestAggregateDailyDropsMissingTimestamps(t *testing.T) {
	entries := []HourlyRecord{
		{Temperature: ptr(4.0)},
		{Timestamp: ptr(""), Temperature: ptr(5.0)},
		hourlyEntry("2026-02-15T08:00:00+01:00", ptr(2.0), nil, nil),
	}

	got := aggregateDaily(entries)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (entries without timestamps dropped)", len(got))
	}
	if got[0].TempMinC == nil || *got[0].TempMinC != 2.0 {
		t.Errorf("TempMinC = %v, want 2.0", got[0].TempMinC)
	}
}

func TestAggregateDailyNullHandling(t *testing.T) {
	entries := []HourlyRecord{
		hourlyEntry("2026-02-15T08:00:00+01:00", nil, nil, nil),
		hourlyEntry("2026-02-15T09:00:00+01:00", nil, nil, nil),
	}

	got := aggregateDaily(entries)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	day := got[0]
	if day.TempMinC != nil || day.TempMaxC != nil {
		t.Errorf("temps = (%v, %v), want nil when all values are null", day.TempMinC, day.TempMaxC)
	}
	if day.PrecipitationTotalMm != 0 {
		t.Errorf("PrecipitationTotalMm = %v, want 0 (null treated as 0)", day.PrecipitationTotalMm)
	}
	if day.PrecipitationProbabilityMaxPercent != nil {
		t.Errorf("PrecipitationProbabilityMaxPercent = %v, want nil", day.PrecipitationProbabilityMaxPercent)
	}
	if day.Condition != nil {
		t.Errorf("Condition = %v, want nil", day.Condition)
	}
}

func TestAggregateDailyPrecipitationRounding(t *testing.T) {
	entries := []HourlyRecord{
		hourlyEntry("2026-02-15T08:00:00+01:00", nil, ptr(0.1), nil),
		hourlyEntry("2026-02-15T09:00:00+01:00", nil, ptr(0.25), nil),
	}

	got := aggregateDaily(entries)
	if got[0].PrecipitationTotalMm != 0.4 {
		t.Errorf("PrecipitationTotalMm = %v, want 0.4", got[0].PrecipitationTotalMm)
	}
}

func TestDominantConditionTieBreak(t *testing.T) {
	entries := []HourlyRecord{
		hourlyEntry("2026-02-15T08:00:00+01:00", nil, nil, ptr("cloudy")),
		hourlyEntry("2026-02-15T09:00:00+01:00", nil, nil, ptr("rain")),
		hourlyEntry("2026-02-15T10:00:00+01:00", nil, nil, ptr("rain")),
		hourlyEntry("2026-02-15T11:00:00+01:00", nil, nil, ptr("cloudy")),
	}

	// Equal counts: the condition first encountered in entry order wins.
	got := dominantCondition(entries)
	if got == nil || *got != "cloudy" {
		t.Errorf("dominantCondition = %v, want cloudy", got)
	}
}

func TestDominantConditionMajorityWins(t *testing.T) {
	entries := []HourlyRecord{
		hourlyEntry("2026-02-15T08:00:00+01:00", nil, nil, ptr("cloudy")),
		hourlyEntry("2026-02-15T09:00:00+01:00", nil, nil, ptr("rain")),
		hourlyEntry("2026-02-15T10:00:00+01:00", nil, nil, ptr("rain")),
	}

	got := dominantCondition(entries)
	if got == nil || *got != "rain" {
		t.Errorf("dominantCondition = %v, want rain", got)
	}
}

func TestWeekdayForDateKeyFallsBack(t *testing.T) {
	// A bare date key never satisfies the datetime layout, so the key
	// itself is the weekday value.
	if got := weekdayForDateKey("2026-02-15"); got != "2026-02-15" {
		t.Errorf("weekdayForDateKey = %q, want the raw key", got)
	}

	// A full datetime with offset parses and yields the German weekday.
	if got := weekdayForDateKey("2026-02-15 14:00:00+01:00"); got != "Sonntag" {
		t.Errorf("weekdayForDateKey = %q, want Sonntag", got)
	}
}
