package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/story-audio-api/internal/models"
)

var (
	imageExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
	audioExtensions = map[string]bool{
		".mp3":  true,
		".wav":  true,
		".m4a":  true,
		".ogg":  true,
		".webm": true,
	}
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateSubmission validates a story submission form
func ValidateSubmission(userType, text string, hasAudio bool) []ValidationError {
	var errs []ValidationError

	if userType == "" {
		errs = append(errs, ValidationError{Field: "user_type", Message: "user_type is required"})
	} else if !models.ValidUserTypes[userType] {
		errs = append(errs, ValidationError{
			Field:   "user_type",
			Message: fmt.Sprintf("user_type must be one of: %s", strings.Join(userTypes(), ", ")),
		})
	}

	if strings.TrimSpace(text) == "" && !hasAudio {
		errs = append(errs, ValidationError{Field: "story_text", Message: "story text or an audio recording is required"})
	}

	return errs
}

// ValidateEdit validates a moderator edit payload
func ValidateEdit(in *models.EditInput) []ValidationError {
	var errs []ValidationError

	if in.Headline == nil && in.Summary == nil && in.Text == nil {
		errs = append(errs, ValidationError{Field: "body", Message: "at least one of headline, summary or text is required"})
	}
	if in.Text != nil && strings.TrimSpace(*in.Text) == "" {
		errs = append(errs, ValidationError{Field: "text", Message: "text cannot be empty"})
	}

	return errs
}

// AllowedImageExt reports whether ext is an accepted image upload extension
func AllowedImageExt(ext string) bool {
	return imageExtensions[strings.ToLower(ext)]
}

// AllowedAudioExt reports whether ext is an accepted audio upload extension
func AllowedAudioExt(ext string) bool {
	return audioExtensions[strings.ToLower(ext)]
}

// Messages flattens validation errors into a single detail string
func Messages(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Message
	}
	return strings.Join(parts, "; ")
}

func userTypes() []string {
	types := make([]string, 0, len(models.ValidUserTypes))
	for t := range models.ValidUserTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
