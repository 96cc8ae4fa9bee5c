package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/datavex/gateway/internal/prompt"
)

// ChatClient implements Client against OpenAI-compatible chat-completions
// endpoints. Both the openai and perplexity providers use this wire shape.
type ChatClient struct {
	cfg        ProviderConfig
	httpClient *http.Client
}

// NewChatClient creates a ChatClient for the given provider configuration.
func NewChatClient(cfg ProviderConfig) *ChatClient {
	return &ChatClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: RequestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate posts the composed prompt as a chat-completion request: the
// system directive first if present, then one user turn carrying reference
// material, history, and the caller prompt.
func (c *ChatClient) Generate(ctx context.Context, pctx prompt.Context, opts Options) (string, error) {
	if opts.MaxTokens == 0 {
		opts = DefaultOptions()
	}

	var messages []chatMessage
	if pctx.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: pctx.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: pctx.UserMessage()})

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", &ProviderError{Provider: c.cfg.Provider, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: c.cfg.Provider, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: c.cfg.Provider, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a short error excerpt for the log line at the façade.
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &ProviderError{
			Provider:   c.cfg.Provider,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", bytes.TrimSpace(excerpt)),
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &ProviderError{Provider: c.cfg.Provider, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &ProviderError{Provider: c.cfg.Provider, Err: fmt.Errorf("no choices in response")}
	}

	return parsed.Choices[0].Message.Content, nil
}

// Close implements Client. The underlying http.Client holds no resources
// beyond idle connections.
func (c *ChatClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
