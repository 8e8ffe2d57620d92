package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/i474232898/farmerbuddy/internal/llm"
	"github.com/i474232898/farmerbuddy/internal/weather/providers"
)

type AppConfig struct {
	// Secrets. Neither is validated; a missing key shows up as a provider error.
	GeminiAPIKey  string
	WeatherAPIKey string

	LLMProvider    string
	GeminiEndpoint string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIModel    string

	WeatherBaseURL string

	// HTTPTimeout bounds each outbound call. Zero means no client timeout.
	HTTPTimeout time.Duration

	DefaultCity     string
	DefaultLocation string

	// KnowledgeFile replaces the embedded crops/prices/keywords document when set.
	KnowledgeFile string

	LogLevel  string
	LogFormat string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("config: no .env file loaded: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")

	cfg.LLMProvider = strings.ToLower(getenvDefault("LLM_PROVIDER", llm.ProviderGemini))
	if cfg.LLMProvider != llm.ProviderGemini && cfg.LLMProvider != llm.ProviderOpenAI {
		return nil, fmt.Errorf("invalid LLM_PROVIDER %q: want %s or %s", cfg.LLMProvider, llm.ProviderGemini, llm.ProviderOpenAI)
	}
	cfg.GeminiEndpoint = getenvDefault("GEMINI_ENDPOINT", llm.DefaultGeminiEndpoint)
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	cfg.OpenAIModel = getenvDefault("OPENAI_MODEL", llm.DefaultOpenAIModel)

	cfg.WeatherBaseURL = getenvDefault("WEATHER_BASE_URL", providers.DefaultOpenWeatherBaseURL)

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must not be negative")
	}
	cfg.HTTPTimeout = timeout

	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", "Hyderabad")
	cfg.DefaultLocation = getenvDefault("DEFAULT_LOCATION", "Telangana")
	cfg.KnowledgeFile = os.Getenv("KNOWLEDGE_FILE")

	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.LogFormat = getenvDefault("LOG_FORMAT", "text")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// LLMConfig projects the language-model settings.
func (c *AppConfig) LLMConfig() llm.Config {
	return llm.Config{
		Provider:       c.LLMProvider,
		GeminiAPIKey:   c.GeminiAPIKey,
		GeminiEndpoint: c.GeminiEndpoint,
		OpenAIAPIKey:   c.OpenAIAPIKey,
		OpenAIBaseURL:  c.OpenAIBaseURL,
		OpenAIModel:    c.OpenAIModel,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
