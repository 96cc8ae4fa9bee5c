package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_DefaultsToOpenAI(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_API_URL", "")
	t.Setenv("AI_MODEL", "gpt-4o-mini")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.Endpoint)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.False(t, cfg.QuotaLimited)
	assert.True(t, cfg.Configured())
}

func TestFromEnv_OpenAICustomBaseURL(t *testing.T) {
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("OPENAI_API_URL", "https://proxy.example.com/v1/")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.example.com/v1/chat/completions", cfg.Endpoint)
}

func TestFromEnv_Perplexity(t *testing.T) {
	t.Setenv("AI_PROVIDER", "perplexity")
	t.Setenv("PERPLEXITY_API_KEY", "pplx-test")
	t.Setenv("PERPLEXITY_MODEL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderPerplexity, cfg.Provider)
	assert.Equal(t, "https://api.perplexity.ai/chat/completions", cfg.Endpoint)
	assert.Equal(t, "sonar", cfg.Model)
	assert.True(t, cfg.QuotaLimited, "perplexity usage is capped by the monthly ledger")
}

func TestFromEnv_Gemini(t *testing.T) {
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.False(t, cfg.Configured())
}

func TestFromEnv_UnknownProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "huggingface")

	_, err := FromEnv()
	assert.Error(t, err)
}
