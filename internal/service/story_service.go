package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/ai"
	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/store"
)

const (
	fallbackHeadline = "Story Submission"
	summaryLimit     = 100

	// image descriptions shorter than this carry no useful context
	minDescriptionLen = 10
)

// storyService is the concrete implementation of StoryService
type storyService struct {
	store *store.StoryStore
	ai    AIClient
	log   zerolog.Logger
}

func newStoryService(st *store.StoryStore, aiClient AIClient, log zerolog.Logger) *storyService {
	return &storyService{
		store: st,
		ai:    aiClient,
		log:   log.With().Str("service", "story").Logger(),
	}
}

// Submit creates a new story record from a submission. Image description
// and audio transcription are optional enrichment: their failures are
// logged and the submission proceeds. Summarization failures fall back to
// a deterministic headline and truncated summary.
func (s *storyService) Submit(ctx context.Context, in *models.SubmissionInput) (*models.Story, error) {
	if in.UserType == "" {
		return nil, fmt.Errorf("%w: user_type is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Text) == "" && in.AudioLocalPath == "" {
		return nil, fmt.Errorf("%w: story text or audio is required", ErrInvalidInput)
	}

	text := in.Text

	if in.ImageLocalPath != "" {
		description, err := s.ai.DescribeImage(ctx, in.ImageLocalPath)
		if err != nil {
			s.log.Warn().Err(err).Msg("Image description failed, continuing without it")
		} else if len(description) > minDescriptionLen {
			text = text + "\n\nImage context: " + description
		}
	}

	if in.AudioLocalPath != "" {
		transcript, err := s.ai.Transcribe(ctx, in.AudioLocalPath)
		if err != nil {
			s.log.Warn().Err(err).Msg("Audio transcription failed, continuing with original text")
		} else if transcript != "" {
			if text == "" {
				text = transcript
			} else {
				text = text + "\n\nTranscribed audio: " + transcript
			}
		}
	}

	story := &models.Story{
		ID:        uuid.New().String(),
		UserType:  in.UserType,
		Text:      text,
		Image:     in.ImageMediaPath,
		Audio:     in.AudioMediaPath,
		Timestamp: time.Now(),
		Status:    models.StatusPending,
		TTSOptions: &models.TTSOptions{
			Enabled:            false,
			Language:           models.DefaultLanguage,
			AvailableLanguages: models.LanguageCodes(),
		},
		TranslatedAudio: map[string]string{},
	}

	if text != "" {
		story.Headline, story.Summary = s.summarize(ctx, text)
	}

	if err := s.store.Append(story); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("story_id", story.ID).
		Str("user_type", story.UserType).
		Bool("has_image", story.Image != "").
		Bool("has_audio", story.Audio != "").
		Msg("Story submitted")

	return story, nil
}

// summarize returns an AI headline and summary, or the deterministic
// fallback when the call fails or the response does not parse
func (s *storyService) summarize(ctx context.Context, text string) (string, string) {
	result, err := s.ai.Summarize(ctx, text)
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			s.log.Warn().Err(err).Msg("Summary response did not parse, using fallback")
		} else {
			s.log.Warn().Err(err).Msg("Summarization failed, using fallback")
		}
		return fallbackHeadline, truncate(text, summaryLimit) + "..."
	}
	return result.Headline, result.Summary
}

// Get returns the story with the given id
func (s *storyService) Get(ctx context.Context, id string) (*models.Story, error) {
	return s.store.Get(id)
}

// Edit updates headline, summary and text from a moderator edit and moves
// the story to edited status
func (s *storyService) Edit(ctx context.Context, id string, in *models.EditInput) (*models.Story, error) {
	return s.store.Update(id, func(story *models.Story) {
		if in.Headline != nil {
			story.Headline = *in.Headline
		}
		if in.Summary != nil {
			story.Summary = *in.Summary
		}
		if in.Text != nil {
			story.Text = *in.Text
		}
		story.Status = models.StatusEdited
	})
}

// Approve moves the story to approved status. There is no transition back.
func (s *storyService) Approve(ctx context.Context, id string) (*models.Story, error) {
	return s.store.Update(id, func(story *models.Story) {
		story.Status = models.StatusApproved
	})
}

// ListApproved returns approved stories in insertion order
func (s *storyService) ListApproved(ctx context.Context) ([]*models.Story, error) {
	return s.store.ListByStatus(models.StatusApproved), nil
}

// CountsByStatus returns story counts per moderation status
func (s *storyService) CountsByStatus(ctx context.Context) (map[models.StoryStatus]int, error) {
	return s.store.CountByStatus(), nil
}

// truncate cuts text to at most limit runes
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
