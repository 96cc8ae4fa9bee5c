package gateway

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavex/gateway/internal/fallback"
	"github.com/datavex/gateway/internal/llm"
	"github.com/datavex/gateway/internal/prompt"
	"github.com/datavex/gateway/internal/usage"
)

// fakeClient returns a fixed response or error and records the last prompt.
type fakeClient struct {
	response string
	err      error
	calls    int
	lastCtx  prompt.Context
}

func (f *fakeClient) Generate(_ context.Context, pctx prompt.Context, _ llm.Options) (string, error) {
	f.calls++
	f.lastCtx = pctx
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

// failingStore simulates unavailable ledger persistence.
type failingStore struct{}

func (failingStore) Load(context.Context) (usage.Record, bool, error) {
	return usage.Record{}, false, errors.New("disk on fire")
}

func (failingStore) Save(context.Context, usage.Record) error {
	return errors.New("disk on fire")
}

func configured() llm.ProviderConfig {
	return llm.ProviderConfig{Provider: llm.ProviderOpenAI, APIKey: "k", Model: "m"}
}

func quotaLimited() llm.ProviderConfig {
	cfg := configured()
	cfg.Provider = llm.ProviderPerplexity
	cfg.QuotaLimited = true
	return cfg
}

func fileLedger(t *testing.T, limit float64) *usage.Ledger {
	t.Helper()
	return usage.NewLedger(usage.NewFileStore(filepath.Join(t.TempDir(), "usage.json")), limit)
}

func TestSuggestContent_LiveResponse(t *testing.T) {
	client := &fakeClient{response: "- tighten the intro\n- add a call-to-action"}
	g := New(configured(), client, nil)

	got, err := g.SuggestContent(context.Background(), ContentRequest{Content: "my blog post"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tighten the intro", "add a call-to-action"}, got.Suggestions)
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.lastCtx.UserPrompt, "my blog post")
	assert.Contains(t, client.lastCtx.Reference, "DataVex")
}

func TestSuggestContent_UnconfiguredSkipsProvider(t *testing.T) {
	client := &fakeClient{response: "should never be used"}
	cfg := configured()
	cfg.APIKey = ""
	g := New(cfg, client, nil)

	got, err := g.SuggestContent(context.Background(), ContentRequest{Content: "improve this content"})
	require.NoError(t, err)
	assert.Equal(t, 0, client.calls, "provider must not be invoked without a credential")
	require.Len(t, got.Suggestions, 1)
	assert.Contains(t, got.Suggestions[0], "Mock content suggestion")
}

func TestSuggestContent_ProviderFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: &llm.ProviderError{Provider: llm.ProviderOpenAI, StatusCode: 500, Err: errors.New("boom")}}
	g := New(configured(), client, nil)

	got, err := g.SuggestContent(context.Background(), ContentRequest{Content: "anything"})
	require.NoError(t, err, "provider errors never reach the caller")
	require.Len(t, got.Suggestions, 1)
	assert.Contains(t, got.Suggestions[0], "Mock content suggestion")
}

func TestChat_QuotaExhausted(t *testing.T) {
	ledger := fileLedger(t, 0.05)
	ctx := context.Background()
	require.NoError(t, ledger.Record(ctx, 0.05))

	client := &fakeClient{response: "live reply"}
	g := New(quotaLimited(), client, ledger)

	got, err := g.Chat(ctx, "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, QuotaAdvisory, got.Reply)
	assert.Equal(t, 0, client.calls, "no provider call once the quota is reached")

	rec, err := ledger.Load(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, rec.AmountUsed, 1e-9, "refused calls must not increment usage")
}

func TestChat_RecordsUsageOnSuccess(t *testing.T) {
	ledger := fileLedger(t, 5)
	client := &fakeClient{response: "Here's the beauty of what we can do."}
	g := New(quotaLimited(), client, ledger)

	got, err := g.Chat(context.Background(), "tell me about pharma", nil)
	require.NoError(t, err)
	assert.Equal(t, "Here's the beauty of what we can do.", got.Reply)

	rec, err := ledger.Load(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, callCost, rec.AmountUsed, 1e-9)
}

func TestChat_NoUsageRecordedOnFailure(t *testing.T) {
	ledger := fileLedger(t, 5)
	client := &fakeClient{err: &llm.ProviderError{Provider: llm.ProviderPerplexity, Err: errors.New("timeout")}}
	g := New(quotaLimited(), client, ledger)

	got, err := g.Chat(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, fallback.Generic, got.Reply)

	rec, err := ledger.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(0), rec.AmountUsed)
}

func TestChat_HistoryReachesProvider(t *testing.T) {
	client := &fakeClient{response: "reply"}
	g := New(configured(), client, nil)

	history := []prompt.Turn{
		{Role: "user", Text: "we are a fintech"},
		{Role: "assistant", Text: "great, tell me more"},
	}
	_, err := g.Chat(context.Background(), "what do you offer?", history)
	require.NoError(t, err)

	require.Len(t, client.lastCtx.History, 2)
	assert.Equal(t, "we are a fintech", client.lastCtx.History[0].Text)
	assert.Equal(t, prompt.ChatSystemDirective, client.lastCtx.System)
}

func TestLedgerFailureIsLoud(t *testing.T) {
	ledger := usage.NewLedger(failingStore{}, 5)
	client := &fakeClient{response: "reply"}
	g := New(quotaLimited(), client, ledger)

	_, err := g.Chat(context.Background(), "hello", nil)
	require.Error(t, err, "broken quota accounting must not be silent")
	assert.Equal(t, 0, client.calls)
}

func TestSuggestSEO_QuotaExhaustedKeepsCallerFields(t *testing.T) {
	ledger := fileLedger(t, 0.01)
	require.NoError(t, ledger.Record(context.Background(), 0.01))

	g := New(quotaLimited(), &fakeClient{response: "unused"}, ledger)
	got, err := g.SuggestSEO(context.Background(), SEORequest{
		Title:           "My Page",
		MetaDescription: "About my page",
		Keywords:        []string{"ai"},
	})
	require.NoError(t, err)
	assert.Equal(t, "My Page", got.MetaTitle)
	assert.Equal(t, "About my page", got.MetaDescription)
	assert.Equal(t, []string{QuotaAdvisory}, got.Suggestions)
}

func TestParseResume_TruncatesInput(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}
	client := &fakeClient{response: "no json"}
	g := New(configured(), client, nil)

	_, err := g.ParseResume(context.Background(), string(long))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(client.lastCtx.UserPrompt), 2000+500, "prompt carries at most 2000 chars of resume text plus instructions")
}

func TestParseResume_LiveJSON(t *testing.T) {
	client := &fakeClient{response: `{"name": "Jane", "skills": ["python"], "experience": 4}`}
	g := New(configured(), client, nil)

	got, err := g.ParseResume(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, []string{"python"}, got.Skills)
	assert.Equal(t, float64(4), got.ExperienceYears)
}
