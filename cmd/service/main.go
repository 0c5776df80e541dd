// Package main is the entry point for the blog server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jsamuelsen/project-blog/internal/adapters/content"
	"github.com/jsamuelsen/project-blog/internal/adapters/http"
	"github.com/jsamuelsen/project-blog/internal/adapters/http/handlers"
	"github.com/jsamuelsen/project-blog/internal/adapters/http/views"
	"github.com/jsamuelsen/project-blog/internal/app"
	"github.com/jsamuelsen/project-blog/internal/platform/config"
	"github.com/jsamuelsen/project-blog/internal/platform/logging"
	"github.com/jsamuelsen/project-blog/internal/platform/telemetry"
	"github.com/jsamuelsen/project-blog/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting blog",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	store, err := content.Default()
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	logger.Info("content loaded", slog.Int("projects", store.Len()))

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering content health check: %w", err)
	}

	service := app.NewProjectService(app.ProjectServiceConfig{
		Store:  store,
		Logger: logger,
	})

	engine, err := views.New(views.Site{
		Title:  cfg.Site.Title,
		Footer: cfg.Site.Footer,
	})
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	buildInfo.Projects = store.Len()

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:         logger,
		ServiceName:    cfg.Telemetry.ServiceName,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORS:           cfg.CORS,
		Blog:           handlers.NewBlogHandler(service, engine, handlers.NewMetrics(reg)),
		Projects:       handlers.NewProjectsHandler(service),
		Health:         handlers.NewHealthHandler(healthRegistry, buildInfo, reg),
	})

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
