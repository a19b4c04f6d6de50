// Package synthesis turns story text into persisted speech audio files.
package synthesis

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/models"
)

// audioSubdir is where generated files live under the media directory
const audioSubdir = "audio"

// Synthesizer converts text in a catalog language into a persisted audio
// file and returns its media-relative path
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) (string, error)
}

// Engine is the production Synthesizer. It drives the htgo-tts engine,
// which speaks to Google's translate speech endpoint, and writes one
// uniquely named mp3 per call. Files are never overwritten or deleted;
// repeated generation for the same story and language produces a new file
// and only the store metadata is repointed.
type Engine struct {
	dir     string // absolute output directory
	timeout time.Duration
	log     zerolog.Logger
}

// NewEngine creates an Engine writing under mediaDir/audio
func NewEngine(mediaDir string, timeout time.Duration, log zerolog.Logger) (*Engine, error) {
	dir := filepath.Join(mediaDir, audioSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &Engine{
		dir:     dir,
		timeout: timeout,
		log:     log.With().Str("component", "synthesis").Logger(),
	}, nil
}

// Synthesize generates speech for text in the given catalog language and
// returns the media-relative path of the new file. Unknown language codes
// fall back to the English engine code rather than failing.
func (e *Engine) Synthesize(ctx context.Context, text, language string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text cannot be empty")
	}

	engineCode := models.SynthesisCode(language)
	name := uuid.New().String()

	speech := htgotts.Speech{Folder: e.dir, Language: engineCode}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	// The engine has no context support; bound the wait ourselves. An
	// expired call keeps running server-side, matching the no-cancellation
	// model of the rest of the pipeline.
	done := make(chan error, 1)
	go func() {
		_, err := speech.CreateSpeechFile(text, name)
		done <- err
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("synthesis timed out: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("synthesis failed: %w", err)
		}
	}

	relPath := path.Join(audioSubdir, name+".mp3")
	e.log.Debug().Str("language", language).Str("engine_code", engineCode).Str("path", relPath).Msg("Generated audio")
	return relPath, nil
}
