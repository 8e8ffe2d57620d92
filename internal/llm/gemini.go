package llm

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/i474232898/farmerbuddy/internal/common"
)

// DefaultGeminiEndpoint is the generateContent endpoint for gemini-2.0-flash.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// GeminiClient calls the Generative Language API with the key in a header.
type GeminiClient struct {
	endpoint string
	apiKey   string
	client   *resty.Client
}

var _ Generator = (*GeminiClient)(nil)

func NewGeminiClient(client *http.Client, endpoint, apiKey string) *GeminiClient {
	if endpoint == "" {
		endpoint = DefaultGeminiEndpoint
	}
	return &GeminiClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   common.NewRestClient(client, ""),
	}
}

func (g *GeminiClient) Name() string { return ProviderGemini }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate posts {"contents":[{"parts":[{"text":prompt}]}]} and returns
// candidates[0].content.parts[0].text.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-goog-api-key", g.apiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		}).
		Post(g.endpoint)
	if err := common.CheckResponse(resp, err); err != nil {
		return "", err
	}

	var out geminiResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", common.Shape("gemini: decode: %v", err)
	}
	if len(out.Candidates) == 0 {
		return "", common.Shape("gemini: no candidates")
	}
	content := out.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0].Text == nil {
		return "", common.Shape("gemini: candidates[0] has no text part")
	}
	return *content.Parts[0].Text, nil
}
