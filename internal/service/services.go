package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/ai"
	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/store"
	"github.com/story-audio-api/internal/synthesis"
)

// AIClient defines the generative AI operations the services consume
type AIClient interface {
	Summarize(ctx context.Context, text string) (*ai.Summary, error)
	Translate(ctx context.Context, text, langCode string) (string, error)
	DescribeImage(ctx context.Context, imagePath string) (string, error)
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// StoryService defines the interface for the story submission workflow
type StoryService interface {
	Submit(ctx context.Context, in *models.SubmissionInput) (*models.Story, error)
	Get(ctx context.Context, id string) (*models.Story, error)
	Edit(ctx context.Context, id string, in *models.EditInput) (*models.Story, error)
	Approve(ctx context.Context, id string) (*models.Story, error)
	ListApproved(ctx context.Context) ([]*models.Story, error)
	CountsByStatus(ctx context.Context) (map[models.StoryStatus]int, error)
}

// AudioService defines the interface for speech generation
type AudioService interface {
	GenerateForStory(ctx context.Context, storyID, language, textOverride string) (*models.AudioResult, error)
	GenerateRaw(ctx context.Context, text, language, storyID string) (*models.AudioResult, error)
	ApplyAudioUpdate(ctx context.Context, storyID, audioPath, language string) error
}

// TranslationService defines the interface for text translation
type TranslationService interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Services holds all service interfaces
type Services struct {
	Story       StoryService
	Audio       AudioService
	Translation TranslationService
}

// NewServices creates all services
func NewServices(st *store.StoryStore, aiClient AIClient, synth synthesis.Synthesizer, log zerolog.Logger) *Services {
	return &Services{
		Story:       newStoryService(st, aiClient, log),
		Audio:       newAudioService(st, aiClient, synth, log),
		Translation: newTranslationService(aiClient, log),
	}
}
