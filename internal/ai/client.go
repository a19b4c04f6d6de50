package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/story-audio-api/internal/config"
	"github.com/story-audio-api/internal/models"
)

var (
	// ErrEmptyResponse means the model returned no usable content
	ErrEmptyResponse = errors.New("ai: empty response")
	// ErrMalformedResponse means the model content could not be parsed
	// into the expected structure
	ErrMalformedResponse = errors.New("ai: malformed response")
)

// Summary is the structured result of a summarization call
type Summary struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}

// Client talks to an OpenAI-compatible generative AI endpoint. The default
// configuration targets Gemini's compatibility surface; any endpoint that
// speaks the chat-completion and transcription APIs works.
type Client struct {
	client             *openai.Client
	model              string
	transcriptionModel string
	log                zerolog.Logger
}

// NewClient creates a Client from AI configuration
func NewClient(cfg *config.AIConfig, log zerolog.Logger) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		client:             openai.NewClientWithConfig(clientCfg),
		model:              cfg.Model,
		transcriptionModel: cfg.TranscriptionModel,
		log:                log.With().Str("component", "ai").Logger(),
	}
}

// Summarize asks the model for a headline and summary of the story text.
// The model is instructed to answer in strict JSON; anything else is a
// malformed response and the caller applies its deterministic fallback.
func (c *Client) Summarize(ctx context.Context, text string) (*Summary, error) {
	prompt := fmt.Sprintf(`Generate a headline and summary for this story. Avoid special characters like asterisks (*).

%s

Respond with strict JSON only, in exactly this shape:
{"headline": "...", "summary": "..."}`, text)

	content, err := c.chat(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseSummary(content)
}

// Translate translates text into the language identified by the catalog
// code. Hindi explicitly requests Devanagari script.
func (c *Client) Translate(ctx context.Context, text, langCode string) (string, error) {
	var prompt string
	if langCode == "hi-IN" {
		prompt = "Translate the following text into Hindi using Devanagari script:\n\n" + text
	} else {
		prompt = fmt.Sprintf(`Translate the following text into %s.
Keep the meaning intact but make it sound natural in the target language:

%s`, models.TranslationName(langCode), text)
	}

	return c.chat(ctx, prompt)
}

// DescribeImage asks the model to describe the image at the given path
func (c *Client) DescribeImage(ctx context.Context, imagePath string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	mime := "image/jpeg"
	if ext := strings.ToLower(filepath.Ext(imagePath)); ext == ".png" {
		mime = "image/png"
	} else if ext == ".gif" {
		mime = "image/gif"
	} else if ext == ".webp" {
		mime = "image/webp"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Describe what you see in this image in a clear and concise way:",
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("image description failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Transcribe converts the audio file at the given path into text
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// chat sends a single-message chat completion and returns the text content
func (c *Client) chat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// parseSummary parses model output into a Summary. Models often wrap JSON
// in markdown fences; those are stripped before unmarshaling.
func parseSummary(content string) (*Summary, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var summary Summary
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if summary.Headline == "" {
		return nil, fmt.Errorf("%w: missing headline", ErrMalformedResponse)
	}
	return &summary, nil
}
