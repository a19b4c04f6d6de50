package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/story-audio-api/internal/models"
)

// ErrNotFound is returned when a story id is not in the collection
var ErrNotFound = errors.New("story not found")

const storiesFile = "stories.json"

// StoryStore persists the full story collection as a single JSON document.
//
// Every mutation is a load-entire-collection, mutate-in-memory,
// save-entire-collection cycle; there is no row-level update. The naive
// version of that protocol loses updates under concurrent writers (the later
// save silently discards the earlier writer's changes), so all read-modify-
// write sequences here are serialized behind a single process-wide mutex.
// The externally observable load/save contract is unchanged by the lock.
type StoryStore struct {
	path string
	log  zerolog.Logger
	mu   sync.Mutex
}

// New creates a StoryStore backed by stories.json under dataDir
func New(dataDir string, log zerolog.Logger) (*StoryStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &StoryStore{
		path: filepath.Join(dataDir, storiesFile),
		log:  log.With().Str("component", "store").Logger(),
	}, nil
}

// Load reads the persisted collection in insertion order. A missing or
// unparsable document yields an empty collection, never an error: the
// document is treated as corrupt and will be reinitialized on the next save.
func (s *StoryStore) Load() []*models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Save serializes the full collection and rewrites the document.
// The whole collection is rewritten every time; there is no delta write.
func (s *StoryStore) Save(stories []*models.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(stories)
}

// Append adds a new story to the end of the collection
func (s *StoryStore) Append(story *models.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stories := s.loadLocked()
	stories = append(stories, story)
	return s.saveLocked(stories)
}

// Get returns the story with the given id
func (s *StoryStore) Get(id string) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, story := range s.loadLocked() {
		if story.ID == id {
			return story, nil
		}
	}
	return nil, ErrNotFound
}

// Update applies mutate to the story with the given id and persists the
// collection. The latest persisted state is re-read under the lock, so the
// mutation always commits against current data. When the id is absent no
// write happens and ErrNotFound is returned.
func (s *StoryStore) Update(id string, mutate func(*models.Story)) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stories := s.loadLocked()
	for _, story := range stories {
		if story.ID == id {
			mutate(story)
			if err := s.saveLocked(stories); err != nil {
				return nil, err
			}
			return story, nil
		}
	}
	return nil, ErrNotFound
}

// ListByStatus returns stories with the given status, preserving order
func (s *StoryStore) ListByStatus(status models.StoryStatus) []*models.Story {
	var matched []*models.Story
	for _, story := range s.Load() {
		if story.Status == status {
			matched = append(matched, story)
		}
	}
	return matched
}

// CountByStatus returns the number of stories per status
func (s *StoryStore) CountByStatus() map[models.StoryStatus]int {
	counts := make(map[models.StoryStatus]int)
	for _, story := range s.Load() {
		counts[story.Status]++
	}
	return counts
}

func (s *StoryStore) loadLocked() []*models.Story {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("Failed to read story document, starting empty")
		}
		return []*models.Story{}
	}

	var stories []*models.Story
	if err := json.Unmarshal(data, &stories); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("Story document is corrupt, starting empty")
		return []*models.Story{}
	}
	return stories
}

func (s *StoryStore) saveLocked(stories []*models.Story) error {
	data, err := json.MarshalIndent(stories, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize stories: %w", err)
	}

	// Write to a temp file first so a failed write never truncates the
	// existing document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write story document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace story document: %w", err)
	}
	return nil
}
