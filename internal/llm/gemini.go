package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/datavex/gateway/internal/prompt"
)

// GeminiClient implements Client for Google Gemini via the genai SDK.
type GeminiClient struct {
	client *genai.Client
	cfg    ProviderConfig
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, cfg ProviderConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, cfg: cfg}, nil
}

// Generate sends the composed prompt to Gemini. The system directive maps
// onto the model's system instruction; reference, history, and the caller
// prompt travel in the single user part.
func (c *GeminiClient) Generate(ctx context.Context, pctx prompt.Context, opts Options) (string, error) {
	if opts.MaxTokens == 0 {
		opts = DefaultOptions()
	}

	model := c.client.GenerativeModel(c.cfg.Model)
	model.SetTemperature(float32(opts.Temperature))
	model.SetMaxOutputTokens(int32(opts.MaxTokens))
	if pctx.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(pctx.System)},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	resp, err := model.GenerateContent(ctx, genai.Text(pctx.UserMessage()))
	if err != nil {
		return "", &ProviderError{Provider: ProviderGemini, Err: err}
	}

	text, err := textFromResponse(resp)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGemini, Err: err}
	}
	return text, nil
}

// Close releases resources held by the underlying SDK client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
