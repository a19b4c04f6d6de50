package models

// Language describes one supported speech synthesis language
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	// EngineCode is the code the synthesis engine expects for this language
	EngineCode string `json:"-"`
	// PlainName is the bare language name used in translation prompts
	PlainName string `json:"-"`
}

// DefaultLanguage is the catalog's default language code
const DefaultLanguage = "en-US"

// Languages is the fixed catalog of supported synthesis languages.
// The set is closed; stories advertise exactly these codes.
var Languages = []Language{
	{Code: "en-US", Name: "English (US)", EngineCode: "en", PlainName: "English"},
	{Code: "es-ES", Name: "Spanish (Spain)", EngineCode: "es", PlainName: "Spanish"},
	{Code: "fr-FR", Name: "French (France)", EngineCode: "fr", PlainName: "French"},
	{Code: "hi-IN", Name: "Hindi (India)", EngineCode: "hi", PlainName: "Hindi"},
	{Code: "de-DE", Name: "German (Germany)", EngineCode: "de", PlainName: "German"},
	{Code: "ja-JP", Name: "Japanese (Japan)", EngineCode: "ja", PlainName: "Japanese"},
	{Code: "zh-CN", Name: "Chinese (Mainland China)", EngineCode: "zh-CN", PlainName: "Chinese"},
}

// LanguageCodes returns the catalog codes in declaration order
func LanguageCodes() []string {
	codes := make([]string, len(Languages))
	for i, l := range Languages {
		codes[i] = l.Code
	}
	return codes
}

// SynthesisCode maps a catalog code to the engine synthesis code.
// Unknown codes fall back to English rather than failing.
func SynthesisCode(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.EngineCode
		}
	}
	return "en"
}

// TranslationName returns the plain language name used in translation
// prompts, or a generic phrase for codes outside the catalog.
func TranslationName(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.PlainName
		}
	}
	return "the target language"
}

// IsSupportedLanguage reports whether code is in the catalog
func IsSupportedLanguage(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
