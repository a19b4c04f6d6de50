package mocks

import (
	"context"

	"github.com/story-audio-api/internal/models"
	"github.com/story-audio-api/internal/service"
	"github.com/story-audio-api/internal/store"
)

// MockStoryService is a mock implementation of StoryService
type MockStoryService struct {
	SubmitFunc  func(ctx context.Context, in *models.SubmissionInput) (*models.Story, error)
	GetFunc     func(ctx context.Context, id string) (*models.Story, error)
	EditFunc    func(ctx context.Context, id string, in *models.EditInput) (*models.Story, error)
	ApproveFunc func(ctx context.Context, id string) (*models.Story, error)

	Stories   map[string]*models.Story
	Submitted []*models.Story
}

// Verify interface compliance
var _ service.StoryService = (*MockStoryService)(nil)

func NewMockStoryService() *MockStoryService {
	return &MockStoryService{
		Stories: make(map[string]*models.Story),
	}
}

func (m *MockStoryService) Submit(ctx context.Context, in *models.SubmissionInput) (*models.Story, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, in)
	}
	story := &models.Story{
		ID:       "test-story-id",
		UserType: in.UserType,
		Text:     in.Text,
		Status:   models.StatusPending,
		TTSOptions: &models.TTSOptions{
			Enabled:            false,
			Language:           models.DefaultLanguage,
			AvailableLanguages: models.LanguageCodes(),
		},
		TranslatedAudio: map[string]string{},
	}
	m.Stories[story.ID] = story
	m.Submitted = append(m.Submitted, story)
	return story, nil
}

func (m *MockStoryService) Get(ctx context.Context, id string) (*models.Story, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	if story, ok := m.Stories[id]; ok {
		return story, nil
	}
	return nil, store.ErrNotFound
}

func (m *MockStoryService) Edit(ctx context.Context, id string, in *models.EditInput) (*models.Story, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, id, in)
	}
	story, ok := m.Stories[id]
	if !ok {
		return nil, store.ErrNotFound
	}
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
	return story, nil
}

func (m *MockStoryService) Approve(ctx context.Context, id string) (*models.Story, error) {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, id)
	}
	story, ok := m.Stories[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	story.Status = models.StatusApproved
	return story, nil
}

func (m *MockStoryService) ListApproved(ctx context.Context) ([]*models.Story, error) {
	var approved []*models.Story
	for _, story := range m.Stories {
		if story.Status == models.StatusApproved {
			approved = append(approved, story)
		}
	}
	return approved, nil
}

func (m *MockStoryService) CountsByStatus(ctx context.Context) (map[models.StoryStatus]int, error) {
	counts := make(map[models.StoryStatus]int)
	for _, story := range m.Stories {
		counts[story.Status]++
	}
	return counts, nil
}

// MockAudioService is a mock implementation of AudioService
type MockAudioService struct {
	GenerateForStoryFunc func(ctx context.Context, storyID, language, textOverride string) (*models.AudioResult, error)
	GenerateRawFunc      func(ctx context.Context, text, language, storyID string) (*models.AudioResult, error)
	AppliedUpdates       []string
}

// Verify interface compliance
var _ service.AudioService = (*MockAudioService)(nil)

func NewMockAudioService() *MockAudioService {
	return &MockAudioService{}
}

func (m *MockAudioService) GenerateForStory(ctx context.Context, storyID, language, textOverride string) (*models.AudioResult, error) {
	if m.GenerateForStoryFunc != nil {
		return m.GenerateForStoryFunc(ctx, storyID, language, textOverride)
	}
	return &models.AudioResult{
		AudioPath: "audio/test.mp3",
		AudioURL:  "/media/audio/test.mp3",
	}, nil
}

func (m *MockAudioService) GenerateRaw(ctx context.Context, text, language, storyID string) (*models.AudioResult, error) {
	if m.GenerateRawFunc != nil {
		return m.GenerateRawFunc(ctx, text, language, storyID)
	}
	return &models.AudioResult{
		AudioPath: "audio/test.mp3",
		AudioURL:  "/media/audio/test.mp3",
	}, nil
}

func (m *MockAudioService) ApplyAudioUpdate(ctx context.Context, storyID, audioPath, language string) error {
	m.AppliedUpdates = append(m.AppliedUpdates, storyID)
	return nil
}

// MockTranslationService is a mock implementation of TranslationService
type MockTranslationService struct {
	TranslateFunc func(ctx context.Context, text, targetLang string) (string, error)
}

// Verify interface compliance
var _ service.TranslationService = (*MockTranslationService)(nil)

func NewMockTranslationService() *MockTranslationService {
	return &MockTranslationService{}
}

func (m *MockTranslationService) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, targetLang)
	}
	return text, nil
}
