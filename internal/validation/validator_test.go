package validation

import (
	"strings"
	"testing"

	"github.com/story-audio-api/internal/models"
)

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name     string
		userType string
		text     string
		hasAudio bool
		wantErrs int
	}{
		{"valid text submission", "student", "Once upon a time", false, 0},
		{"valid audio-only submission", "parent", "", true, 0},
		{"missing user type", "", "Some text", false, 1},
		{"unknown user type", "robot", "Some text", false, 1},
		{"no text and no audio", "teacher", "   ", false, 1},
		{"everything missing", "", "", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSubmission(tt.userType, tt.text, tt.hasAudio)
			if len(errs) != tt.wantErrs {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrs, len(errs), errs)
			}
		})
	}
}

func TestValidateSubmissionUserTypeMessage(t *testing.T) {
	errs := ValidateSubmission("robot", "text", false)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errs))
	}
	for userType := range models.ValidUserTypes {
		if !strings.Contains(errs[0].Message, userType) {
			t.Errorf("Expected message to list %q: %s", userType, errs[0].Message)
		}
	}
}

func TestValidateEdit(t *testing.T) {
	headline := "New Headline"
	empty := "  "

	if errs := ValidateEdit(&models.EditInput{Headline: &headline}); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
	if errs := ValidateEdit(&models.EditInput{}); len(errs) != 1 {
		t.Errorf("Expected 1 error for empty edit, got %v", errs)
	}
	if errs := ValidateEdit(&models.EditInput{Text: &empty}); len(errs) != 1 {
		t.Errorf("Expected 1 error for blank text, got %v", errs)
	}
}

func TestAllowedExtensions(t *testing.T) {
	if !AllowedImageExt(".PNG") {
		t.Error("Extension check should be case insensitive")
	}
	if AllowedImageExt(".bmp") {
		t.Error(".bmp is not an accepted image extension")
	}
	if !AllowedAudioExt(".webm") {
		t.Error(".webm is an accepted audio extension")
	}
	if AllowedAudioExt(".flac") {
		t.Error(".flac is not an accepted audio extension")
	}
}

func TestMessages(t *testing.T) {
	errs := []ValidationError{
		{Field: "a", Message: "first"},
		{Field: "b", Message: "second"},
	}
	if got := Messages(errs); got != "first; second" {
		t.Errorf("Expected joined messages, got %q", got)
	}
}
