package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Generator turns a single text prompt into a single text answer.
// Implementations make one request per call and report failures with the
// error classes from internal/common.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider names accepted by New.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config selects and configures a Generator.
type Config struct {
	Provider string

	GeminiAPIKey   string
	GeminiEndpoint string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	HTTPClient *http.Client
}

// New builds the Generator named by cfg.Provider. An empty provider means Gemini.
func New(cfg Config) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderGemini:
		return NewGeminiClient(cfg.HTTPClient, cfg.GeminiEndpoint, cfg.GeminiAPIKey), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.HTTPClient, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
