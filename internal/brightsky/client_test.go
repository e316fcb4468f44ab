package brightsky

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "Europe/Berlin", 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, srv
}

func TestCurrentWeatherRequest(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"weather": {"temperature": 3.2}, "sources": [{"station_name": "Aachen-Orsbach"}]}`))
	})

	payload, err := c.CurrentWeather(context.Background(), 50.7753, 6.0839)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/current_weather" {
		t.Errorf("path = %q, want /current_weather", gotPath)
	}
	if gotQuery.Get("lat") != "50.7753" || gotQuery.Get("lon") != "6.0839" {
		t.Errorf("coordinates = (%s, %s), want (50.7753, 6.0839)", gotQuery.Get("lat"), gotQuery.Get("lon"))
	}
	if gotQuery.Get("tz") != "Europe/Berlin" {
		t.Errorf("tz = %q, want Europe/Berlin", gotQuery.Get("tz"))
	}
	if payload.Weather == nil || payload.Weather.Temperature == nil || *payload.Weather.Temperature != 3.2 {
		t.Errorf("payload.Weather = %+v, want temperature 3.2", payload.Weather)
	}
}

func TestForecastClampsDays(t *testing.T) {
	tests := []struct {
		days     int
		wantSpan int
	}{
		{0, 1},
		{-3, 1},
		{3, 3},
		{10, 10},
		{15, 10},
	}

	for _, tt := range tests {
		var gotQuery url.Values
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"weather": [], "sources": []}`))
		})

		if _, err := c.Forecast(context.Background(), 52.52, 13.405, tt.days); err != nil {
			t.Fatalf("days=%d: unexpected error: %v", tt.days, err)
		}

		start, err := time.Parse("2006-01-02", gotQuery.Get("date"))
		if err != nil {
			t.Fatalf("days=%d: bad date %q", tt.days, gotQuery.Get("date"))
		}
		end, err := time.Parse("2006-01-02", gotQuery.Get("last_date"))
		if err != nil {
			t.Fatalf("days=%d: bad last_date %q", tt.days, gotQuery.Get("last_date"))
		}
		if span := int(end.Sub(start).Hours() / 24); span != tt.wantSpan {
			t.Errorf("days=%d: span = %d days, want %d", tt.days, span, tt.wantSpan)
		}
	}
}

func TestAlertsCoordinateHandling(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"alerts": []}`))
	})

	// Nationwide: no coordinates in the query.
	if _, err := c.Alerts(context.Background(), nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Has("lat") || gotQuery.Has("lon") {
		t.Errorf("nationwide query carries coordinates: %v", gotQuery)
	}
	if gotQuery.Get("tz") != "Europe/Berlin" {
		t.Errorf("tz = %q, want Europe/Berlin", gotQuery.Get("tz"))
	}

	// With both coordinates they are included.
	lat, lon := 50.7753, 6.0839
	if _, err := c.Alerts(context.Background(), &lat, &lon); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("lat") != "50.7753" || gotQuery.Get("lon") != "6.0839" {
		t.Errorf("coordinates = (%s, %s), want (50.7753, 6.0839)", gotQuery.Get("lat"), gotQuery.Get("lon"))
	}

	// A lone latitude is not sent.
	if _, err := c.Alerts(context.Background(), &lat, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Has("lat") {
		t.Errorf("half-specified coordinates were sent: %v", gotQuery)
	}
}

func TestSourcesRequest(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"sources": [{"station_name": "Aachen-Orsbach", "observation_type": "current"}]}`))
	})

	payload, err := c.Sources(context.Background(), 50.7753, 6.0839, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery.Get("max_dist") != "50000" {
		t.Errorf("max_dist = %q, want default 50000", gotQuery.Get("max_dist"))
	}
	if len(payload.Sources) != 1 {
		t.Fatalf("len(Sources) = %d, want 1", len(payload.Sources))
	}
	// A scalar observation_type decodes into a single-element list.
	if len(payload.Sources[0].ObservationType) != 1 || payload.Sources[0].ObservationType[0] != "current" {
		t.Errorf("ObservationType = %v, want [current]", payload.Sources[0].ObservationType)
	}
}

func TestRequestNotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.CurrentWeather(context.Background(), 0, 0)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "No weather data found for the given location." {
		t.Errorf("message = %q, want the dedicated not-found wording", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
}

func TestRequestServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := c.CurrentWeather(context.Background(), 0, 0)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !strings.Contains(err.Error(), "API request failed: 500") {
		t.Errorf("error = %q, want generic failure wording with status", err.Error())
	}
}

func TestRequestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c, err := NewClient(srv.URL, "Europe/Berlin", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.CurrentWeather(context.Background(), 0, 0)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("status = %d, want 0 for transport failures", apiErr.StatusCode)
	}
}

func TestNewClientInvalidTimezone(t *testing.T) {
	if _, err := NewClient("http://localhost", "Mars/Olympus_Mons", time.Second); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}
