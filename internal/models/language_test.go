package models

import "testing"

func TestSynthesisCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en-US", "en"},
		{"es-ES", "es"},
		{"fr-FR", "fr"},
		{"hi-IN", "hi"},
		{"de-DE", "de"},
		{"ja-JP", "ja"},
		{"zh-CN", "zh-CN"},
		{"pt-BR", "en"}, // outside the catalog, falls back to English
		{"", "en"},
	}

	for _, tt := range tests {
		if got := SynthesisCode(tt.code); got != tt.want {
			t.Errorf("SynthesisCode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestTranslationName(t *testing.T) {
	if got := TranslationName("ja-JP"); got != "Japanese" {
		t.Errorf("Expected Japanese, got %q", got)
	}
	if got := TranslationName("xx-XX"); got != "the target language" {
		t.Errorf("Expected generic phrase for unknown code, got %q", got)
	}
}

func TestLanguageCodesOrder(t *testing.T) {
	codes := LanguageCodes()
	if len(codes) != 7 {
		t.Fatalf("Expected 7 codes, got %d", len(codes))
	}
	if codes[0] != DefaultLanguage {
		t.Errorf("Expected %q first, got %q", DefaultLanguage, codes[0])
	}
	if codes[6] != "zh-CN" {
		t.Errorf("Expected zh-CN last, got %q", codes[6])
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	if !IsSupportedLanguage("hi-IN") {
		t.Error("Expected hi-IN to be supported")
	}
	if IsSupportedLanguage("hi") {
		t.Error("Bare engine codes are not catalog codes")
	}
}
