package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/config"
	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/service"
	"github.com/story-audio-api/internal/store"
	"github.com/story-audio-api/internal/validation"
)

// uploadsSubdir is where submitted media lives under the media directory
const uploadsSubdir = "uploads"

// StoryHandler handles the story submission and review endpoints
type StoryHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *StoryHandler {
	return &StoryHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "story").Logger(),
	}
}

// Submit handles POST /v1/stories
// Accepts a multipart form with user_type, story_text and optional image
// and audio uploads.
func (h *StoryHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	userType := c.PostForm("user_type")
	storyText := c.PostForm("story_text")

	hasAudio := hasFormFile(c, "audio")
	if errs := validation.ValidateSubmission(userType, storyText, hasAudio); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": validation.Messages(errs)})
		return
	}

	in := &models.SubmissionInput{
		UserType: userType,
		Text:     storyText,
	}

	if mediaPath, localPath, err := h.saveUpload(c, "image", validation.AllowedImageExt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": err.Error()})
		return
	} else {
		in.ImageMediaPath = mediaPath
		in.ImageLocalPath = localPath
	}

	if mediaPath, localPath, err := h.saveUpload(c, "audio", validation.AllowedAudioExt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": err.Error()})
		return
	} else {
		in.AudioMediaPath = mediaPath
		in.AudioLocalPath = localPath
	}

	story, err := h.services.Story.Submit(ctx, in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to submit story")
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"story":      story,
		"review_url": "/v1/stories/" + story.ID,
	})
}

// Review handles GET /v1/stories/:id
func (h *StoryHandler) Review(c *gin.Context) {
	story, err := h.services.Story.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

// Edit handles PUT /v1/stories/:id
// Applies the moderator's headline/summary/text changes and moves the
// story to edited status.
func (h *StoryHandler) Edit(c *gin.Context) {
	var in models.EditInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": "invalid request body"})
		return
	}
	if errs := validation.ValidateEdit(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "detail": validation.Messages(errs)})
		return
	}

	story, err := h.services.Story.Edit(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

// Approve handles POST /v1/stories/:id/approve
func (h *StoryHandler) Approve(c *gin.Context) {
	story, err := h.services.Story.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

// ListApproved handles GET /v1/stories
func (h *StoryHandler) ListApproved(c *gin.Context) {
	stories, err := h.services.Story.ListApproved(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if stories == nil {
		stories = []*models.Story{}
	}
	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

// saveUpload stores an optional multipart file under the media uploads
// directory with a unique name. It returns the media-relative path for the
// story record and the absolute path for enrichment calls.
func (h *StoryHandler) saveUpload(c *gin.Context, field string, allowedExt func(string) bool) (string, string, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		// Field absent: uploads are optional
		return "", "", nil
	}
	defer file.Close()

	if header.Size > h.cfg.Storage.MaxUploadSize {
		return "", "", fmt.Errorf("%s file too large, max size is %d MB", field, h.cfg.Storage.MaxUploadSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExt(ext) {
		return "", "", fmt.Errorf("unsupported %s file type %q", field, ext)
	}

	uploadDir := filepath.Join(h.cfg.Storage.MediaDir, uploadsSubdir)
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		h.log.Error().Err(err).Msg("Failed to create upload directory")
		return "", "", fmt.Errorf("failed to save %s file", field)
	}

	filename := uuid.New().String() + ext
	localPath := filepath.Join(uploadDir, filename)

	dst, err := os.Create(localPath)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create upload file")
		return "", "", fmt.Errorf("failed to save %s file", field)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.log.Error().Err(err).Msg("Failed to write upload file")
		return "", "", fmt.Errorf("failed to save %s file", field)
	}

	return path.Join(uploadsSubdir, filename), localPath, nil
}

// hasFormFile reports whether the multipart form carries a non-empty file
func hasFormFile(c *gin.Context, field string) bool {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return false
	}
	file.Close()
	return header.Filename != ""
}

// fail writes the structured error response for err
func fail(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"success": false, "detail": err.Error()})
}

// errorStatus maps the service error taxonomy onto HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
