package mocks

import (
	"context"
	"fmt"

	"github.com/story-audio-api/internal/ai"
	"github.com/story-audio-api/internal/service"
	"github.com/story-audio-api/internal/synthesis"
)

// MockAIClient is a mock implementation of the AI collaborator
type MockAIClient struct {
	SummarizeFunc     func(ctx context.Context, text string) (*ai.Summary, error)
	TranslateFunc     func(ctx context.Context, text, langCode string) (string, error)
	DescribeImageFunc func(ctx context.Context, imagePath string) (string, error)
	TranscribeFunc    func(ctx context.Context, audioPath string) (string, error)

	SummarizeCalls []string
	TranslateCalls []string
}

// Verify interface compliance
var _ service.AIClient = (*MockAIClient)(nil)

func NewMockAIClient() *MockAIClient {
	return &MockAIClient{}
}

func (m *MockAIClient) Summarize(ctx context.Context, text string) (*ai.Summary, error) {
	m.SummarizeCalls = append(m.SummarizeCalls, text)
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, text)
	}
	return &ai.Summary{Headline: "Test Headline", Summary: "Test summary."}, nil
}

func (m *MockAIClient) Translate(ctx context.Context, text, langCode string) (string, error) {
	m.TranslateCalls = append(m.TranslateCalls, langCode)
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, langCode)
	}
	return "[" + langCode + "] " + text, nil
}

func (m *MockAIClient) DescribeImage(ctx context.Context, imagePath string) (string, error) {
	if m.DescribeImageFunc != nil {
		return m.DescribeImageFunc(ctx, imagePath)
	}
	return "A description of the uploaded image.", nil
}

func (m *MockAIClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audioPath)
	}
	return "A transcript of the uploaded audio.", nil
}

// MockSynthesizer is a mock implementation of the synthesis engine
type MockSynthesizer struct {
	SynthesizeFunc func(ctx context.Context, text, language string) (string, error)

	Calls     []SynthesisCall
	callCount int
}

// SynthesisCall records one Synthesize invocation
type SynthesisCall struct {
	Text     string
	Language string
}

// Verify interface compliance
var _ synthesis.Synthesizer = (*MockSynthesizer)(nil)

func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{}
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text, language string) (string, error) {
	m.Calls = append(m.Calls, SynthesisCall{Text: text, Language: language})
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text, language)
	}
	m.callCount++
	return fmt.Sprintf("audio/mock-%s-%d.mp3", language, m.callCount), nil
}
