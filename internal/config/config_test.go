package config

import (
	"testing"
	"time"

	"github.com/i474232898/farmerbuddy/internal/llm"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"GEMINI_API_KEY", "WEATHER_API_KEY", "LLM_PROVIDER", "GEMINI_ENDPOINT", "OPENAI_API_KEY",
		"OPENAI_BASE_URL", "OPENAI_MODEL", "WEATHER_BASE_URL", "HTTP_TIMEOUT", "DEFAULT_CITY",
		"DEFAULT_LOCATION", "KNOWLEDGE_FILE", "LOG_LEVEL", "LOG_FORMAT", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLMProvider != llm.ProviderGemini {
		t.Errorf("expected gemini provider, got %q", cfg.LLMProvider)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("expected no timeout by default, got %s", cfg.HTTPTimeout)
	}
	if cfg.DefaultCity != "Hyderabad" || cfg.DefaultLocation != "Telangana" || cfg.Port != "8080" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.GeminiAPIKey != "" || cfg.WeatherAPIKey != "" {
		t.Errorf("expected empty keys")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("WEATHER_API_KEY", "w")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("HTTP_TIMEOUT", "15s")
	t.Setenv("DEFAULT_CITY", "Vijayawada")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLMProvider != llm.ProviderOpenAI || cfg.HTTPTimeout != 15*time.Second || cfg.DefaultCity != "Vijayawada" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if lc := cfg.LLMConfig(); lc.GeminiAPIKey != "g" || lc.Provider != llm.ProviderOpenAI {
		t.Errorf("unexpected llm config %+v", lc)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"LLM_PROVIDER": "llama",
		"HTTP_TIMEOUT": "soon",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			}
		})
	}
}
