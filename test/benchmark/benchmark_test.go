package benchmark

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/store"
)

func seedStore(b *testing.B, n int) *store.StoryStore {
	b.Helper()
	st, err := store.New(b.TempDir(), zerolog.Nop())
	if err != nil {
		b.Fatalf("Failed to create store: %v", err)
	}

	stories := make([]*models.Story, n)
	for i := 0; i < n; i++ {
		stories[i] = &models.Story{
			ID:        fmt.Sprintf("story-%06d", i),
			UserType:  "student",
			Text:      "Once upon a time there was a story used for measuring document throughput.",
			Headline:  fmt.Sprintf("Headline %d", i),
			Summary:   "A short summary.",
			Timestamp: time.Now(),
			Status:    models.StatusPending,
			TTSOptions: &models.TTSOptions{
				Enabled:            false,
				Language:           models.DefaultLanguage,
				AvailableLanguages: models.LanguageCodes(),
			},
			TranslatedAudio: map[string]string{},
		}
	}
	if err := st.Save(stories); err != nil {
		b.Fatalf("Failed to seed store: %v", err)
	}
	return st
}

// BenchmarkLoad measures full-document reads against a 1000 story file
func BenchmarkLoad(b *testing.B) {
	st := seedStore(b, 1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if stories := st.Load(); len(stories) != 1000 {
			b.Fatalf("Expected 1000 stories, got %d", len(stories))
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "stories/sec")
}

// BenchmarkAppend measures the read-modify-write cost of adding one story
func BenchmarkAppend(b *testing.B) {
	st := seedStore(b, 100)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		err := st.Append(&models.Story{
			ID:     fmt.Sprintf("appended-%d", i),
			Text:   "appended story",
			Status: models.StatusPending,
		})
		if err != nil {
			b.Fatalf("Append failed: %v", err)
		}
	}
}

// BenchmarkUpdate measures targeted mutation of one story in a 1000 story file
func BenchmarkUpdate(b *testing.B) {
	st := seedStore(b, 1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := st.Update("story-000500", func(s *models.Story) {
			s.Audio = fmt.Sprintf("audio/run-%d.mp3", i)
		})
		if err != nil {
			b.Fatalf("Update failed: %v", err)
		}
	}
}
