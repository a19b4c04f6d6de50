package models

import (
	"time"
)

// StoryStatus represents the moderation state of a story
type StoryStatus string

const (
	StatusPending  StoryStatus = "pending"
	StatusEdited   StoryStatus = "edited"
	StatusApproved StoryStatus = "approved"
)

// ValidUserTypes defines allowed submitter categories
var ValidUserTypes = map[string]bool{
	"student":   true,
	"parent":    true,
	"teacher":   true,
	"community": true,
}

// TTSOptions carries per-story speech synthesis state.
// Enabled flips to true only after the first successful generation.
type TTSOptions struct {
	Enabled            bool     `json:"enabled"`
	Language           string   `json:"language"`
	AvailableLanguages []string `json:"available_languages"`
}

// Story represents a user-submitted story in the system
type Story struct {
	ID       string `json:"id"`
	UserType string `json:"user_type"`
	Text     string `json:"text"`
	// Image and Audio are media paths relative to the media directory.
	// Audio always points at the most recently generated language's file.
	Image      string      `json:"image,omitempty"`
	Audio      string      `json:"audio,omitempty"`
	Headline   string      `json:"headline,omitempty"`
	Summary    string      `json:"summary,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Status     StoryStatus `json:"status"`
	TTSOptions *TTSOptions `json:"tts_options,omitempty"`
	// TranslatedAudio maps language code to generated audio path. Entries
	// are only ever inserted or overwritten, never removed.
	TranslatedAudio map[string]string `json:"translated_audio,omitempty"`
}

// SubmissionInput carries a new story submission into the service layer.
// MediaPath fields are relative paths stored on the record; LocalPath fields
// are absolute filesystem paths used for AI enrichment calls.
type SubmissionInput struct {
	UserType       string
	Text           string
	ImageMediaPath string
	ImageLocalPath string
	AudioMediaPath string
	AudioLocalPath string
}

// EditInput carries a moderator edit. Nil fields are left unchanged.
type EditInput struct {
	Headline *string `json:"headline"`
	Summary  *string `json:"summary"`
	Text     *string `json:"text"`
}

// AudioResult is the outcome of a successful synthesis request
type AudioResult struct {
	AudioPath string `json:"audio_path"`
	AudioURL  string `json:"audio_url"`
}

// TTSRequest is the request body for raw text synthesis
type TTSRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	StoryID  string `json:"story_id,omitempty"`
}

// GenerateAudioRequest is the request body for story audio generation
type GenerateAudioRequest struct {
	Language         string `json:"language"`
	TextToSynthesize string `json:"text_to_synthesize,omitempty"`
}

// TranslateRequest is the request body for text translation
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}
