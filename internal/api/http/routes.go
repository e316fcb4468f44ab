// Package httpapi mirrors the MCP weather tools as a plain REST API.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dwdmcp/dwd-mcp-server/internal/brightsky"
	"github.com/dwdmcp/dwd-mcp-server/internal/geocoding"
	"github.com/dwdmcp/dwd-mcp-server/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1/weather")

	v1.Get("/current", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.CurrentWeather(c.Context(), q.Location)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(result)
	})

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		var q forecastQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.Forecast(c.Context(), q.Location, q.Days)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(result)
	})

	v1.Get("/alerts", func(c *fiber.Ctx) error {
		// Location is optional; empty means nationwide.
		result, err := service.Alerts(c.Context(), c.Query("location"))
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(result)
	})

	v1.Get("/stations", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.FindStations(c.Context(), q.Location)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(result)
	})
}

// mapServiceError converts the two core error kinds into HTTP statuses:
// resolution failures are client errors, upstream 404s stay 404, anything
// else from the gateway is a bad-gateway condition.
func mapServiceError(err error) error {
	var geoErr *geocoding.GeocodingError
	if errors.As(err, &geoErr) {
		return fiber.NewError(fiber.StatusBadRequest, geoErr.Message)
	}

	var apiErr *brightsky.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return fiber.NewError(fiber.StatusNotFound, apiErr.Message)
		}
		return fiber.NewError(fiber.StatusBadGateway, apiErr.Message)
	}

	return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
}

// locationQuery holds the required location query parameter.
type locationQuery struct {
	Location string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	q := locationQuery{Location: c.Query("location")}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Location string `validate:"required"`
	Days     int    `validate:"min=1,max=10"`
}

func (q *forecastQuery) bind(c *fiber.Ctx) error {
	q.Location = c.Query("location")
	q.Days = c.QueryInt("days", 3)
	return validate.Struct(q)
}
