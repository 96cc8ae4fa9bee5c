// Package llm mediates all calls to external text-generation providers
// behind a single Client contract. The active provider is selected once
// from the environment at startup.
package llm

import (
	"fmt"
	"os"
	"strings"
)

// Provider identifies a completion backend.
type Provider string

// Supported providers.
const (
	ProviderOpenAI     Provider = "openai"
	ProviderPerplexity Provider = "perplexity"
	ProviderGemini     Provider = "gemini"
)

// Default endpoints and models per provider.
const (
	defaultOpenAIBaseURL      = "https://api.openai.com/v1"
	defaultPerplexityEndpoint = "https://api.perplexity.ai/chat/completions"
	defaultPerplexityModel    = "sonar"
	defaultGeminiModel        = "gemini-2.5-flash"
)

// ProviderConfig is the immutable per-process provider selection:
// endpoint, model, credential, and whether calls count against the
// monthly spend quota.
type ProviderConfig struct {
	Provider     Provider
	Endpoint     string
	Model        string
	APIKey       string
	QuotaLimited bool
}

// Configured reports whether a credential exists for the active provider.
// Without one the gateway never attempts a live call.
func (c ProviderConfig) Configured() bool {
	return c.APIKey != ""
}

// FromEnv resolves the active provider configuration from environment
// variables. An unset AI_PROVIDER defaults to openai; an unknown value is
// an error rather than a silent fallback.
func FromEnv() (ProviderConfig, error) {
	name := strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER")))
	if name == "" {
		name = string(ProviderOpenAI)
	}

	switch Provider(name) {
	case ProviderOpenAI:
		base := os.Getenv("OPENAI_API_URL")
		if base == "" {
			base = defaultOpenAIBaseURL
		}
		return ProviderConfig{
			Provider: ProviderOpenAI,
			Endpoint: strings.TrimSuffix(base, "/") + "/chat/completions",
			Model:    os.Getenv("AI_MODEL"),
			APIKey:   os.Getenv("OPENAI_API_KEY"),
		}, nil

	case ProviderPerplexity:
		endpoint := os.Getenv("PERPLEXITY_API_URL")
		if endpoint == "" {
			endpoint = defaultPerplexityEndpoint
		}
		model := os.Getenv("PERPLEXITY_MODEL")
		if model == "" {
			model = defaultPerplexityModel
		}
		return ProviderConfig{
			Provider:     ProviderPerplexity,
			Endpoint:     endpoint,
			Model:        model,
			APIKey:       os.Getenv("PERPLEXITY_API_KEY"),
			QuotaLimited: true,
		}, nil

	case ProviderGemini:
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = defaultGeminiModel
		}
		return ProviderConfig{
			Provider: ProviderGemini,
			Model:    model,
			APIKey:   os.Getenv("GEMINI_API_KEY"),
		}, nil
	}

	return ProviderConfig{}, fmt.Errorf("unknown AI_PROVIDER %q", name)
}
