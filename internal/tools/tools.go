// Package tools registers the weather operations as MCP tools.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dwdmcp/dwd-mcp-server/internal/brightsky"
	"github.com/dwdmcp/dwd-mcp-server/internal/geocoding"
	"github.com/dwdmcp/dwd-mcp-server/internal/weather"
)

type toolset struct {
	svc *weather.Service
}

// Register wires the four weather tools into the MCP server.
func Register(s *server.MCPServer, svc *weather.Service) {
	t := &toolset{svc: svc}

	s.AddTool(mcp.NewTool("get_current_weather",
		mcp.WithDescription("Aktuelles Wetter für einen Ort abrufen. Gibt Temperatur, Luftfeuchtigkeit, Wind, Niederschlag, Bewölkung und weitere aktuelle Wetterdaten zurück."),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Ort als Stadtname (z.B. 'Aachen', 'München') oder Koordinaten (z.B. '50.7753,6.0839')"),
		),
	), t.handleCurrentWeather)

	s.AddTool(mcp.NewTool("get_weather_forecast",
		mcp.WithDescription("Wettervorhersage für einen Ort abrufen. Gibt stündliche Vorhersagedaten sowie eine Tageszusammenfassung mit Minimal-/Maximaltemperaturen und Niederschlagssummen zurück."),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Ort als Stadtname (z.B. 'Köln', 'Berlin') oder Koordinaten (z.B. '50.9375,6.9603')"),
		),
		mcp.WithNumber("days",
			mcp.DefaultNumber(3),
			mcp.Description("Anzahl der Vorhersagetage (1-10, Standard: 3)"),
		),
	), t.handleForecast)

	s.AddTool(mcp.NewTool("get_weather_alerts",
		mcp.WithDescription("Amtliche Wetterwarnungen abrufen. Gibt aktuelle Wetterwarnungen des DWD zurück, inklusive Warntyp, Schweregrad, Beschreibung und Gültigkeitszeitraum. Kann für einen bestimmten Ort oder deutschlandweit abgefragt werden."),
		mcp.WithString("location",
			mcp.Description("Optional: Ort als Stadtname oder Koordinaten. Ohne Angabe werden alle Warnungen für Deutschland zurückgegeben."),
		),
	), t.handleAlerts)

	s.AddTool(mcp.NewTool("find_weather_station",
		mcp.WithDescription("Nächstgelegene DWD-Wetterstationen finden. Gibt eine Liste der Wetterstationen in der Nähe des angegebenen Ortes zurück, inklusive Stationsname, ID und Entfernung."),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Ort als Stadtname (z.B. 'Hamburg') oder Koordinaten (z.B. '53.5511,9.9937')"),
		),
	), t.handleFindStations)
}

func (t *toolset) handleCurrentWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := req.RequireString("location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := t.svc.CurrentWeather(ctx, location)
	if err != nil {
		return envelope(err)
	}
	return jsonResult(result)
}

func (t *toolset) handleForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := req.RequireString("location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	days := req.GetInt("days", 3)

	result, err := t.svc.Forecast(ctx, location, days)
	if err != nil {
		return envelope(err)
	}
	return jsonResult(result)
}

func (t *toolset) handleAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location := req.GetString("location", "")

	result, err := t.svc.Alerts(ctx, location)
	if err != nil {
		return envelope(err)
	}
	return jsonResult(result)
}

func (t *toolset) handleFindStations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := req.RequireString("location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := t.svc.FindStations(ctx, location)
	if err != nil {
		return envelope(err)
	}
	return jsonResult(result)
}

// envelope renders resolution and upstream failures as the {"error": msg}
// JSON text callers are expected to check for. Anything else is a genuine
// tool failure and propagates as one.
func envelope(err error) (*mcp.CallToolResult, error) {
	var geoErr *geocoding.GeocodingError
	var apiErr *brightsky.APIError
	if errors.As(err, &geoErr) || errors.As(err, &apiErr) {
		text, encErr := encodeJSON(map[string]string{"error": err.Error()})
		if encErr != nil {
			return nil, encErr
		}
		return mcp.NewToolResultText(text), nil
	}
	return nil, err
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	text, err := encodeJSON(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

// encodeJSON marshals with indentation and without HTML escaping, so
// umlauts and other non-ASCII characters reach the agent literally.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
