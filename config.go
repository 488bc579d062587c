package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultModel    = "o3-mini"
	defaultVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
)

// Language is a CLI-facing language code.
type Language string

const (
	LanguageEnglish Language = "eng"
	LanguagePolish  Language = "pl"
)

// YouTubeCode maps the CLI code to the code YouTube's caption tracks use.
func (l Language) YouTubeCode() string {
	if l == LanguagePolish {
		return "pl"
	}
	return "en"
}

// DisplayName is the human-readable name used in log output.
func (l Language) DisplayName() string {
	if l == LanguagePolish {
		return "Polish"
	}
	return "English"
}

func parseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguagePolish:
		return Language(s), nil
	}
	return "", fmt.Errorf("%w: %q (valid options: eng, pl)", ErrInvalidLanguage, s)
}

// SummaryLevel describes one of the three summary depths. Instruction and
// Header are keyed by output language.
type SummaryLevel struct {
	Name        string
	Instruction map[Language]string
	Header      map[Language]string
	MaxTokens   int
}

// summaryLevels is the fixed generation order: simple, moderate, complex.
var summaryLevels = []SummaryLevel{
	{
		Name: "simple",
		Instruction: map[Language]string{
			LanguageEnglish: "Provide a brief, simple overview of the main points in 2-3 sentences:",
			LanguagePolish:  "Przedstaw krótkie podsumowanie głównych punktów w 2-3 zdaniach:",
		},
		Header: map[Language]string{
			LanguageEnglish: "Simple Summary:",
			LanguagePolish:  "Podsumowanie Proste:",
		},
		MaxTokens: 1000,
	},
	{
		Name: "moderate",
		Instruction: map[Language]string{
			LanguageEnglish: "Create a detailed summary that covers the key points and important details in 4-6 sentences:",
			LanguagePolish:  "Stwórz szczegółowe podsumowanie obejmujące kluczowe punkty i ważne detale w 4-6 zdaniach:",
		},
		Header: map[Language]string{
			LanguageEnglish: "Moderate Summary:",
			LanguagePolish:  "Podsumowanie Średnio Zaawansowane:",
		},
		MaxTokens: 1000,
	},
	{
		Name: "complex",
		Instruction: map[Language]string{
			LanguageEnglish: "Generate a comprehensive analysis including main themes, key arguments, and important details. Include any relevant context and implications:",
			LanguagePolish:  "Stwórz kompleksową analizę zawierającą główne tematy, kluczowe argumenty i ważne szczegóły. Uwzględnij odpowiedni kontekst i implikacje:",
		},
		Header: map[Language]string{
			LanguageEnglish: "Complex Summary:",
			LanguagePolish:  "Podsumowanie Złożone:",
		},
		MaxTokens: 4000,
	},
}

// Config holds everything a run needs, resolved once at startup.
type Config struct {
	URL       string
	Languages []Language // output languages, in print order
	APIKey    string
	Model     string
	BaseURL   string // OpenAI-compatible API base URL; empty = SDK default
}

// newConfig resolves the run configuration from positional args, flags and
// environment. The API key is validated here, before any network call.
func newConfig(args []string, dual bool) (*Config, error) {
	url := defaultVideoURL
	if len(args) > 0 && args[0] != "" {
		url = args[0]
	}

	lang := LanguageEnglish
	if len(args) > 1 {
		var err error
		lang, err = parseLanguage(args[1])
		if err != nil {
			return nil, err
		}
	}

	languages := []Language{lang}
	if dual {
		languages = []Language{LanguageEnglish, LanguagePolish}
	}

	apiKey := getConfig(llmAPIKey, "OPENAI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: set OPENAI_API_KEY or use --api-key", ErrMissingCredential)
	}

	model := getConfig(llmModel, "YTSUMMARIZER_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Config{
		URL:       url,
		Languages: languages,
		APIKey:    apiKey,
		Model:     model,
		BaseURL:   getConfig(llmBaseURL, "YTSUMMARIZER_API_URL"),
	}, nil
}

// getConfig returns flag value if set, otherwise env var
func getConfig(flagVal, envKey string) string {
	if flagVal != "" {
		return flagVal
	}
	return os.Getenv(envKey)
}
