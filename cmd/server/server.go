package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Cre-XeOnz/XeonzGen/internal/config"
	"github.com/Cre-XeOnz/XeonzGen/internal/domain/thumbnail"
	"github.com/Cre-XeOnz/XeonzGen/internal/infrastructure/logger"
	"github.com/Cre-XeOnz/XeonzGen/internal/infrastructure/observability"
	"github.com/Cre-XeOnz/XeonzGen/internal/infrastructure/store"
	"github.com/Cre-XeOnz/XeonzGen/internal/interfaces/httpserver"
)

// @title XeonzGen Thumbnail API
// @version 1.0
// @description Prompt-to-thumbnail generation service backed by an external image host
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	memoryStore := store.NewMemoryStore()
	composer := thumbnail.NewComposer(cfg, log)
	thumbnailService := thumbnail.NewService(cfg, memoryStore, composer, log)

	httpServer := httpserver.New(cfg, log, thumbnailService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
