package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	httpapi "github.com/i474232898/farmerbuddy/internal/api/http"
	"github.com/i474232898/farmerbuddy/internal/assistant"
	"github.com/i474232898/farmerbuddy/internal/config"
	"github.com/i474232898/farmerbuddy/internal/llm"
	"github.com/i474232898/farmerbuddy/internal/logging"
	"github.com/i474232898/farmerbuddy/internal/weather"
	"github.com/i474232898/farmerbuddy/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}

	// Shared HTTP client for outbound provider calls. A zero timeout means none.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherProvider(providers.HTTPClientConfig{
		Client:  httpClient,
		BaseURL: cfg.WeatherBaseURL,
	}, cfg.WeatherAPIKey, time.Local)
	weatherSvc := weather.NewService(provider, time.Local)

	llmCfg := cfg.LLMConfig()
	llmCfg.HTTPClient = httpClient
	generator, err := llm.New(llmCfg)
	if err != nil {
		log.Fatalf("failed to create language model client: %v", err)
	}

	knowledge, err := assistant.LoadKnowledge(cfg.KnowledgeFile)
	if err != nil {
		log.Fatalf("failed to load knowledge: %v", err)
	}
	assistantSvc, err := assistant.NewService(generator, knowledge, assistant.WithDefaultLocation(cfg.DefaultLocation))
	if err != nil {
		log.Fatalf("failed to create assistant: %v", err)
	}

	app := httpapi.NewApp(httpapi.Deps{
		Weather:         weatherSvc,
		Assistant:       assistantSvc,
		DefaultCity:     cfg.DefaultCity,
		DefaultLocation: cfg.DefaultLocation,
	})

	log.WithFields(log.Fields{
		"port":    cfg.Port,
		"llm":     generator.Name(),
		"weather": provider.Name(),
		"season":  assistantSvc.Season(),
	}).Info("farmerbuddy starting")

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
}
