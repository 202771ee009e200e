package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/Harsh-GitHup/go-weather-app/internal/api/http"
	"github.com/Harsh-GitHup/go-weather-app/internal/cache"
	"github.com/Harsh-GitHup/go-weather-app/internal/config"
	"github.com/Harsh-GitHup/go-weather-app/internal/forecast"
	"github.com/Harsh-GitHup/go-weather-app/internal/owm"
	"github.com/Harsh-GitHup/go-weather-app/internal/scheduler"
	"github.com/Harsh-GitHup/go-weather-app/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound OpenWeatherMap calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	owmClient := owm.NewClient(httpClient, cfg.OpenWeatherAPIKey, cfg.GeoLimit)

	// TTL cache in front of the upstream, with a periodic janitor sweep.
	resultCache := cache.New(cfg.CacheTTL)
	fetcher := cache.NewFetcher(owmClient, resultCache)

	presenter := forecast.NewPresenter(fetcher, time.Local)

	janitor := scheduler.New(resultCache, cfg.CacheSweepInterval)
	if err := janitor.Start(); err != nil {
		log.Fatalf("failed to start cache janitor: %v", err)
	}
	defer janitor.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "go-weather-app",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
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

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigin,
	}))

	// Basic health endpoint
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "go-weather-app",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, presenter, cfg.DefaultUnits)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
}
