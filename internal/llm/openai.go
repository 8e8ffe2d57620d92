package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/i474232898/farmerbuddy/internal/common"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint.
type OpenAIClient struct {
	api   *openai.Client
	model string
}

var _ Generator = (*OpenAIClient)(nil)

func NewOpenAIClient(client *http.Client, baseURL, apiKey, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if base := strings.TrimSpace(baseURL); base != "" {
		cfg.BaseURL = base
	}
	if client != nil {
		cfg.HTTPClient = client
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIClient{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

func (c *OpenAIClient) Name() string { return ProviderOpenAI }

// Generate sends the whole prompt as one user message.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", common.Shape("openai: no completion choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("openai: %w", &common.StatusError{Code: apiErr.HTTPStatusCode, Body: apiErr.Message})
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("openai: %w", &common.StatusError{Code: reqErr.HTTPStatusCode, Body: reqErr.Error()})
	}
	return common.Transport(err)
}
