package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/config"
	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	storyHandler := NewStoryHandler(services, cfg, log)
	audioHandler := NewAudioHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// Uploaded and generated media
	router.Static("/media", cfg.Storage.MediaDir)

	// API v1
	v1 := router.Group("/v1")
	{
		stories := v1.Group("/stories")
		{
			stories.POST("", storyHandler.Submit)
			stories.GET("", storyHandler.ListApproved)
			stories.GET("/:id", storyHandler.Review)
			stories.PUT("/:id", storyHandler.Edit)
			stories.POST("/:id/approve", storyHandler.Approve)
			stories.POST("/:id/audio", audioHandler.GenerateStoryAudio)
		}

		v1.GET("/languages", audioHandler.Languages)
		v1.POST("/tts", audioHandler.TextToSpeech)
		v1.POST("/translate", audioHandler.Translate)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "story-audio-api",
	})
}

// metricsHandler returns story counts by moderation status
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, _ := services.Story.CountsByStatus(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"stories": gin.H{
				"pending":  counts[models.StatusPending],
				"edited":   counts[models.StatusEdited],
				"approved": counts[models.StatusApproved],
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"detail":  "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
