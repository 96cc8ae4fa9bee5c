package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/datavex/gateway/internal/prompt"
)

// RequestTimeout bounds every provider call. A timeout is treated the same
// as any other provider failure; there are no retries.
const RequestTimeout = 30 * time.Second

// Options tune a single generation request.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// DefaultOptions returns the options used when the caller passes zero values.
func DefaultOptions() Options {
	return Options{Temperature: 0.7, MaxTokens: 500}
}

// Client is the uniform call contract over completion providers.
type Client interface {
	// Generate sends the composed prompt and returns the raw model text.
	// Any transport failure, timeout, or non-success response surfaces as
	// a *ProviderError.
	Generate(ctx context.Context, pctx prompt.Context, opts Options) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// ProviderError wraps any failure to obtain a completion. It never reaches
// gateway callers; the façade converts it into a fallback response.
type ProviderError struct {
	Provider   Provider
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s returned status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s call failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewClient builds the Client implementation for the configured provider.
// The choice happens once here; callers never branch on provider type again.
func NewClient(ctx context.Context, cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case ProviderOpenAI, ProviderPerplexity:
		return NewChatClient(cfg), nil
	default:
		return nil, fmt.Errorf("no client implementation for provider %q", cfg.Provider)
	}
}
