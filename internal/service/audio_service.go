package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/store"
	"github.com/story-audio-api/internal/synthesis"
)

// audioService is the concrete implementation of AudioService
type audioService struct {
	store *store.StoryStore
	ai    AIClient
	synth synthesis.Synthesizer
	log   zerolog.Logger
}

func newAudioService(st *store.StoryStore, aiClient AIClient, synth synthesis.Synthesizer, log zerolog.Logger) *audioService {
	return &audioService{
		store: st,
		ai:    aiClient,
		synth: synth,
		log:   log.With().Str("service", "audio").Logger(),
	}
}

// GenerateForStory synthesizes audio for a story in the requested language.
// Non-English targets are translated first; a failed translation falls back
// to the untranslated text and never blocks synthesis. On success the story
// record is updated through ApplyAudioUpdate.
func (s *audioService) GenerateForStory(ctx context.Context, storyID, language, textOverride string) (*models.AudioResult, error) {
	story, err := s.store.Get(storyID)
	if err != nil {
		return nil, err
	}

	text := textOverride
	if text == "" {
		text = story.Text
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no text to synthesize", ErrInvalidInput)
	}

	currentLanguage := models.DefaultLanguage
	if story.TTSOptions != nil {
		currentLanguage = story.TTSOptions.Language
	}
	if language != models.DefaultLanguage && language != currentLanguage {
		translated, err := s.ai.Translate(ctx, text, language)
		if err != nil {
			s.log.Warn().Err(err).Str("language", language).Msg("Translation failed, synthesizing original text")
		} else if translated != "" {
			text = translated
		}
	}

	audioPath, err := s.synth.Synthesize(ctx, text, language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	if err := s.ApplyAudioUpdate(ctx, storyID, audioPath, language); err != nil {
		return nil, err
	}

	return &models.AudioResult{
		AudioPath: audioPath,
		AudioURL:  "/media/" + audioPath,
	}, nil
}

// GenerateRaw synthesizes arbitrary text. When storyID is set the matching
// story is updated; a missing story is logged as a warning and the result
// is still returned, mirroring the best-effort update of the original flow.
func (s *audioService) GenerateRaw(ctx context.Context, text, language, storyID string) (*models.AudioResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	audioPath, err := s.synth.Synthesize(ctx, text, language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	if storyID != "" {
		if err := s.ApplyAudioUpdate(ctx, storyID, audioPath, language); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				s.log.Warn().Str("story_id", storyID).Msg("Story not found, audio generated without record update")
			} else {
				return nil, err
			}
		}
	}

	return &models.AudioResult{
		AudioPath: audioPath,
		AudioURL:  "/media/" + audioPath,
	}, nil
}

// ApplyAudioUpdate merges one successful generation into the story record:
// the language's entry in translated_audio is inserted or overwritten, the
// scalar audio field and tts_options are repointed at the new file, and
// enabled flips to true. All other stories and all other language entries
// are untouched. A missing id means no write at all.
func (s *audioService) ApplyAudioUpdate(ctx context.Context, storyID, audioPath, language string) error {
	_, err := s.store.Update(storyID, func(story *models.Story) {
		if story.TTSOptions == nil {
			story.TTSOptions = &models.TTSOptions{
				Enabled:            false,
				Language:           language,
				AvailableLanguages: models.LanguageCodes(),
			}
		}
		if story.TranslatedAudio == nil {
			story.TranslatedAudio = map[string]string{}
		}
		story.TranslatedAudio[language] = audioPath
		story.Audio = audioPath
		story.TTSOptions.Enabled = true
		story.TTSOptions.Language = language
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("story_id", storyID).
		Str("language", language).
		Str("audio_path", audioPath).
		Msg("Story audio updated")
	return nil
}
