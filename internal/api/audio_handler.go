package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/service"
)

// AudioHandler handles synthesis and translation endpoints
type AudioHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAudioHandler creates a new AudioHandler
func NewAudioHandler(services *service.Services, log zerolog.Logger) *AudioHandler {
	return &AudioHandler{
		services: services,
		log:      log.With().Str("handler", "audio").Logger(),
	}
}

// Languages handles GET /v1/languages
// Returns the fixed language catalog.
func (h *AudioHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": models.Languages})
}

// GenerateStoryAudio handles POST /v1/stories/:id/audio
// Synthesizes the story text (or an explicit override) in the requested
// language, translating first when the target differs from the story's
// current language.
func (h *AudioHandler) GenerateStoryAudio(c *gin.Context) {
	var req models.GenerateAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": "invalid request body"})
		return
	}
	if req.Language == "" {
		req.Language = models.DefaultLanguage
	}
	if !models.IsSupportedLanguage(req.Language) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": "unsupported language code " + req.Language})
		return
	}

	result, err := h.services.Audio.GenerateForStory(c.Request.Context(), c.Param("id"), req.Language, req.TextToSynthesize)
	if err != nil {
		h.log.Error().Err(err).Str("story_id", c.Param("id")).Msg("Audio generation failed")
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"audio_path": result.AudioPath,
		"audio_url":  result.AudioURL,
	})
}

// TextToSpeech handles POST /v1/tts
// Synthesizes raw text; when story_id is supplied the story record is
// updated as well.
func (h *AudioHandler) TextToSpeech(c *gin.Context) {
	var req models.TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": "invalid request body"})
		return
	}
	if req.Language == "" {
		req.Language = models.DefaultLanguage
	}
	if !models.IsSupportedLanguage(req.Language) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": "unsupported language code " + req.Language})
		return
	}

	result, err := h.services.Audio.GenerateRaw(c.Request.Context(), req.Text, req.Language, req.StoryID)
	if err != nil {
		h.log.Error().Err(err).Msg("Text-to-speech failed")
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"audio_url": result.AudioURL,
	})
}

// Translate handles POST /v1/translate
func (h *AudioHandler) Translate(c *gin.Context) {
	var req models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": "invalid request body"})
		return
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = models.DefaultLanguage
	}
	if !models.IsSupportedLanguage(req.TargetLanguage) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": "unsupported language code " + req.TargetLanguage})
		return
	}

	translated, err := h.services.Translation.Translate(c.Request.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"translated_text": translated,
	})
}
