package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	mcpserver "github.com/mark3labs/mcp-go/server"

	httpapi "github.com/dwdmcp/dwd-mcp-server/internal/api/http"
	"github.com/dwdmcp/dwd-mcp-server/internal/brightsky"
	"github.com/dwdmcp/dwd-mcp-server/internal/config"
	"github.com/dwdmcp/dwd-mcp-server/internal/geocoding"
	"github.com/dwdmcp/dwd-mcp-server/internal/logging"
	"github.com/dwdmcp/dwd-mcp-server/internal/tools"
	"github.com/dwdmcp/dwd-mcp-server/internal/weather"
)

const (
	appName = "dwd-mcp-server"
	version = "0.1.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.AppEnv == "dev")

	client, err := brightsky.NewClient(cfg.BrightSkyBaseURL, cfg.WeatherTimezone, cfg.WeatherTimeout)
	if err != nil {
		logger.Error("failed to create Bright Sky client", "err", err)
		os.Exit(1)
	}

	resolver := geocoding.NewResolver(
		geocoding.NewNominatimClient(cfg.NominatimBaseURL, cfg.GeocodingTimeout),
	)
	service := weather.NewService(resolver, client, logger)

	// MCP server on stdio.
	mcpSrv := mcpserver.NewMCPServer("DWD Weather Server", version)
	tools.Register(mcpSrv, service)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting MCP server on stdio", "app", appName, "version", version)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			logger.Error("mcp server stopped", "err", err)
		}
		stop()
	}()

	// Optional HTTP mirror of the tools.
	var app *fiber.App
	if cfg.HTTPPort != "" {
		app = fiber.New(fiber.Config{
			AppName:               appName,
			DisableStartupMessage: true,
			ReadTimeout:           10 * time.Second,
			WriteTimeout:          60 * time.Second,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				code := fiber.StatusInternalServerError
				if e, ok := err.(*fiber.Error); ok {
					code = e.Code
				}
				return c.Status(code).JSON(fiber.Map{
					"error":   true,
					"message": err.Error(),
				})
			},
		})
		app.Use(recover.New())

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"status":  "ok",
				"service": appName,
			})
		})
		httpapi.RegisterRoutes(app, service)

		go func() {
			logger.Info("starting HTTP API", "port", cfg.HTTPPort)
			if err := app.Listen(":" + cfg.HTTPPort); err != nil {
				logger.Error("http server stopped", "err", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	if app != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("error during shutdown", "err", err)
		}
	}
}
