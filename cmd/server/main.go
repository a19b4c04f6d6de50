package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/story-audio-api/internal/ai"
	"github.com/story-audio-api/internal/api"
	"github.com/story-audio-api/internal/config"
	"github.com/story-audio-api/internal/service"
	"github.com/story-audio-api/internal/store"
	"github.com/story-audio-api/internal/synthesis"
	"github.com/story-audio-api/pkg/logger"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Story Audio API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize the story store
	storyStore, err := store.New(cfg.Storage.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize story store")
	}

	// Initialize the synthesis engine
	engine, err := synthesis.NewEngine(cfg.Storage.MediaDir, cfg.TTS.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize synthesis engine")
	}

	// Initialize the AI client
	aiClient := ai.NewClient(&cfg.AI, log)

	// Initialize services
	services := service.NewServices(storyStore, aiClient, engine, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
