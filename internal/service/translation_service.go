package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// translationService is the concrete implementation of TranslationService
type translationService struct {
	ai  AIClient
	log zerolog.Logger
}

func newTranslationService(aiClient AIClient, log zerolog.Logger) *translationService {
	return &translationService{
		ai:  aiClient,
		log: log.With().Str("service", "translation").Logger(),
	}
}

// Translate translates text into the target catalog language. This is the
// explicit translate operation, so failures surface to the caller instead
// of falling back silently.
func (s *translationService) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	translated, err := s.ai.Translate(ctx, text, targetLang)
	if err != nil {
		s.log.Error().Err(err).Str("target_language", targetLang).Msg("Translation failed")
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	return translated, nil
}
