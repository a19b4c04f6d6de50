package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/store"
)

func newTestStore(t *testing.T) (*store.StoryStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := store.New(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s, dir
}

func testStory(id string) *models.Story {
	return &models.Story{
		ID:       id,
		UserType: "student",
		Text:     "Once upon a time",
		Status:   models.StatusPending,
		TTSOptions: &models.TTSOptions{
			Enabled:            false,
			Language:           models.DefaultLanguage,
			AvailableLanguages: models.LanguageCodes(),
		},
		TranslatedAudio: map[string]string{},
	}
}

func TestLoadMissingDocument(t *testing.T) {
	s, _ := newTestStore(t)

	stories := s.Load()
	if len(stories) != 0 {
		t.Errorf("Expected empty collection for missing document, got %d stories", len(stories))
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	s, dir := newTestStore(t)

	if err := os.WriteFile(filepath.Join(dir, "stories.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	stories := s.Load()
	if len(stories) != 0 {
		t.Errorf("Expected empty collection for corrupt document, got %d stories", len(stories))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	ids := []string{"a", "b", "c"}
	var stories []*models.Story
	for _, id := range ids {
		stories = append(stories, testStory(id))
	}
	if err := s.Save(stories); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := s.Load()
	if len(loaded) != len(ids) {
		t.Fatalf("Expected %d stories, got %d", len(ids), len(loaded))
	}
	for i, id := range ids {
		if loaded[i].ID != id {
			t.Errorf("Expected story %q at position %d, got %q", id, i, loaded[i].ID)
		}
	}

	// Saving an unmodified loaded collection must reproduce it
	if err := s.Save(loaded); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	reloaded := s.Load()
	if len(reloaded) != len(ids) {
		t.Fatalf("Round trip changed collection size: %d", len(reloaded))
	}
	for i, id := range ids {
		if reloaded[i].ID != id {
			t.Errorf("Round trip reordered stories: expected %q at %d, got %q", id, i, reloaded[i].ID)
		}
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)

	for _, id := range []string{"first", "second", "third"} {
		if err := s.Append(testStory(id)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	loaded := s.Load()
	if len(loaded) != 3 {
		t.Fatalf("Expected 3 stories, got %d", len(loaded))
	}
	if loaded[0].ID != "first" || loaded[2].ID != "third" {
		t.Errorf("Insertion order not preserved: %q, %q, %q", loaded[0].ID, loaded[1].ID, loaded[2].ID)
	}
}

func TestGet(t *testing.T) {
	s, _ := newTestStore(t)
	s.Append(testStory("story-1"))

	story, err := s.Get("story-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if story.ID != "story-1" {
		t.Errorf("Expected story-1, got %q", story.ID)
	}

	if _, err := s.Get("nope"); err != store.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMutatesOnlyTarget(t *testing.T) {
	s, _ := newTestStore(t)
	s.Append(testStory("a"))
	s.Append(testStory("b"))
	s.Append(testStory("c"))

	_, err := s.Update("b", func(story *models.Story) {
		story.TranslatedAudio["fr-FR"] = "audio/x.mp3"
		story.Audio = "audio/x.mp3"
		story.TTSOptions.Enabled = true
		story.TTSOptions.Language = "fr-FR"
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	loaded := s.Load()
	for _, story := range loaded {
		if story.ID == "b" {
			if story.TranslatedAudio["fr-FR"] != "audio/x.mp3" {
				t.Errorf("Expected fr-FR entry on target, got %v", story.TranslatedAudio)
			}
			if !story.TTSOptions.Enabled || story.TTSOptions.Language != "fr-FR" {
				t.Errorf("Expected tts_options updated, got %+v", story.TTSOptions)
			}
			continue
		}
		// All other stories untouched
		if story.Audio != "" || len(story.TranslatedAudio) != 0 || story.TTSOptions.Enabled {
			t.Errorf("Story %q was modified by an update targeting b", story.ID)
		}
	}
}

func TestUpdateNotFoundPerformsNoWrite(t *testing.T) {
	s, dir := newTestStore(t)
	s.Append(testStory("a"))

	before, err := os.ReadFile(filepath.Join(dir, "stories.json"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	_, err = s.Update("nonexistent-id", func(story *models.Story) {
		story.Audio = "/x.mp3"
	})
	if err != store.ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	after, err := os.ReadFile(filepath.Join(dir, "stories.json"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(before) != string(after) {
		t.Error("Document changed after a not-found update")
	}
}

func TestTranslatedAudioAccumulates(t *testing.T) {
	s, _ := newTestStore(t)
	s.Append(testStory("story-1"))

	apply := func(path, lang string) {
		t.Helper()
		_, err := s.Update("story-1", func(story *models.Story) {
			story.TranslatedAudio[lang] = path
			story.Audio = path
			story.TTSOptions.Enabled = true
			story.TTSOptions.Language = lang
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	apply("audio/en-1.mp3", "en-US")
	apply("audio/es-1.mp3", "es-ES")

	story, _ := s.Get("story-1")
	if story.TranslatedAudio["en-US"] != "audio/en-1.mp3" {
		t.Errorf("en-US entry lost: %v", story.TranslatedAudio)
	}
	if story.TranslatedAudio["es-ES"] != "audio/es-1.mp3" {
		t.Errorf("es-ES entry missing: %v", story.TranslatedAudio)
	}
	// Scalar fields are last-write-wins
	if story.Audio != "audio/es-1.mp3" || story.TTSOptions.Language != "es-ES" {
		t.Errorf("Expected audio repointed at es-ES file, got audio=%q language=%q", story.Audio, story.TTSOptions.Language)
	}

	// Re-synthesis overwrites only that language's entry
	apply("audio/en-2.mp3", "en-US")
	story, _ = s.Get("story-1")
	if story.TranslatedAudio["en-US"] != "audio/en-2.mp3" {
		t.Errorf("en-US entry not overwritten: %v", story.TranslatedAudio)
	}
	if story.TranslatedAudio["es-ES"] != "audio/es-1.mp3" {
		t.Errorf("es-ES entry changed by en-US re-synthesis: %v", story.TranslatedAudio)
	}
}

func TestUnknownFieldsIgnored(t *testing.T) {
	s, dir := newTestStore(t)

	doc := `[{"id":"legacy","user_type":"parent","text":"old story","status":"pending","extra_field":42}]`
	if err := os.WriteFile(filepath.Join(dir, "stories.json"), []byte(doc), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	stories := s.Load()
	if len(stories) != 1 {
		t.Fatalf("Expected 1 story, got %d", len(stories))
	}
	if stories[0].ID != "legacy" {
		t.Errorf("Expected legacy story, got %q", stories[0].ID)
	}
	// Optional fields absent in the document stay absent
	if stories[0].TTSOptions != nil {
		t.Errorf("Expected nil tts_options, got %+v", stories[0].TTSOptions)
	}
}
