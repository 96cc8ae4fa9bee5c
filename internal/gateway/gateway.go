// Package gateway is the single entry point for AI-assisted operations:
// content suggestions, SEO analysis, resume parsing, and chat. It composes
// the prompt layer, the provider adapter, the usage ledger, the fallback
// responder, and the extractor so that callers always receive a usable
// result, live or canned.
package gateway

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/datavex/gateway/internal/extract"
	"github.com/datavex/gateway/internal/fallback"
	"github.com/datavex/gateway/internal/llm"
	"github.com/datavex/gateway/internal/prompt"
	"github.com/datavex/gateway/internal/usage"
)

// QuotaAdvisory is returned verbatim when a quota-limited provider's
// monthly spend is exhausted. Usage is never incremented for refused calls.
const QuotaAdvisory = "Monthly AI usage limit reached. Please wait until next month."

// callCost is the approximate spend recorded per successful quota-limited
// call, in the ledger's monetary units.
const callCost = 0.01

// resumeTextLimit caps how much resume text is forwarded to the provider.
const resumeTextLimit = 2000

// Gateway mediates all completion calls for the backend.
type Gateway struct {
	cfg       llm.ProviderConfig
	client    llm.Client
	composer  *prompt.Composer
	responder *fallback.Responder
	ledger    *usage.Ledger
}

// New assembles a Gateway. The client may be nil when the provider has no
// credential; every call then short-circuits to the fallback responder.
// The ledger is only consulted for quota-limited providers.
func New(cfg llm.ProviderConfig, client llm.Client, ledger *usage.Ledger) *Gateway {
	return &Gateway{
		cfg:       cfg,
		client:    client,
		composer:  prompt.NewComposer(),
		responder: fallback.NewResponder(nil),
		ledger:    ledger,
	}
}

// ContentRequest describes a content suggestion call.
type ContentRequest struct {
	Content  string
	Title    string
	Type     string
	Audience string
}

// SEORequest describes an SEO suggestion call.
type SEORequest struct {
	Title           string
	MetaDescription string
	Content         string
	Keywords        []string
}

// source tells the operation wrappers where the raw text came from.
type source int

const (
	sourceLive source = iota
	sourceFallback
	sourceQuota
)

// generate runs the shared control flow: credential check, quota gate,
// provider invocation, usage accounting. Provider failures degrade to the
// fallback responder; only ledger persistence failures surface as errors.
func (g *Gateway) generate(ctx context.Context, userPrompt, system string, history []prompt.Turn, opts llm.Options) (string, source, error) {
	if g.client == nil || !g.cfg.Configured() {
		log.Printf("ai: no API key configured, returning mock response")
		return g.responder.Respond(userPrompt), sourceFallback, nil
	}

	if g.cfg.QuotaLimited && g.ledger != nil {
		exceeded, err := g.ledger.Exceeded(ctx)
		if err != nil {
			return "", sourceFallback, fmt.Errorf("usage ledger unavailable: %w", err)
		}
		if exceeded {
			return QuotaAdvisory, sourceQuota, nil
		}
	}

	pctx := g.composer.Compose(userPrompt, system, history)
	raw, err := g.client.Generate(ctx, pctx, opts)
	if err != nil {
		log.Printf("ai: provider call failed: %v", err)
		return g.responder.Respond(userPrompt), sourceFallback, nil
	}

	if g.cfg.QuotaLimited && g.ledger != nil {
		if err := g.ledger.Record(ctx, callCost); err != nil {
			return "", sourceFallback, fmt.Errorf("usage ledger unavailable: %w", err)
		}
	}
	return raw, sourceLive, nil
}

// SuggestContent returns 3-5 actionable improvement suggestions for a piece
// of content.
func (g *Gateway) SuggestContent(ctx context.Context, req ContentRequest) (extract.ContentSuggestions, error) {
	system := "You are a content marketing expert. Provide helpful suggestions to improve content quality, engagement, and conversion."
	userPrompt := fmt.Sprintf(`Analyze this content and provide 3-5 specific suggestions for improvement:

Title: %s
Type: %s
Target Audience: %s

Content:
%s

Provide suggestions in a clear, actionable format.`,
		orDefault(req.Title, "Untitled"),
		orDefault(req.Type, "Blog post"),
		orDefault(req.Audience, "General"),
		req.Content,
	)

	raw, src, err := g.generate(ctx, userPrompt, system, nil, llm.Options{Temperature: 0.7, MaxTokens: 800})
	if err != nil {
		return extract.ContentSuggestions{}, err
	}
	switch src {
	case sourceQuota:
		return extract.ContentSuggestions{Suggestions: []string{QuotaAdvisory}}, nil
	case sourceFallback:
		// Canned replies are single sentences, not lists; surface them as-is.
		return extract.ContentSuggestions{Suggestions: []string{raw}}, nil
	}
	return extract.Content(raw), nil
}

// SuggestSEO analyzes content and returns SEO recommendations, falling
// back to the caller's own title and description for missing fields.
func (g *Gateway) SuggestSEO(ctx context.Context, req SEORequest) (extract.SEOSuggestions, error) {
	system := "You are an SEO expert. Analyze content and provide specific, actionable SEO recommendations."
	userPrompt := fmt.Sprintf(`Analyze this content for SEO and provide recommendations:

Title: %s
Meta Description: %s
Content: %s
Current Keywords: %s

Provide:
1. An optimized meta title (max 60 characters)
2. An optimized meta description (max 160 characters)
3. 5-10 relevant keywords
4. 3-5 specific SEO improvement suggestions
5. An SEO score from 0-100

Format your response as JSON with keys: metaTitle, metaDescription, keywords (array), suggestions (array), seoScore (number).`,
		orDefault(req.Title, "Not provided"),
		orDefault(req.MetaDescription, "Not provided"),
		orDefault(truncate(req.Content, 1000), "Not provided"),
		orDefault(strings.Join(req.Keywords, ", "), "None"),
	)

	defaults := extract.SEODefaults{Title: req.Title, Description: req.MetaDescription, Keywords: req.Keywords}

	raw, src, err := g.generate(ctx, userPrompt, system, nil, llm.Options{Temperature: 0.7, MaxTokens: 600})
	if err != nil {
		return extract.SEOSuggestions{}, err
	}
	if src == sourceQuota {
		return extract.SEOSuggestions{
			MetaTitle:       req.Title,
			MetaDescription: req.MetaDescription,
			Keywords:        append([]string{}, req.Keywords...),
			Suggestions:     []string{QuotaAdvisory},
			SEOScore:        70,
		}, nil
	}
	return extract.SEO(raw, defaults), nil
}

// ParseResume extracts a structured candidate profile from resume text.
// Only the first 2000 characters are forwarded to the provider.
func (g *Gateway) ParseResume(ctx context.Context, resumeText string) (extract.ResumeProfile, error) {
	trimmed := truncate(resumeText, resumeTextLimit)
	system := "You are a resume parsing expert. Extract structured information from resume text."
	userPrompt := fmt.Sprintf(`Parse this resume and extract:

%s

Extract:
1. Full name
2. Email address
3. Phone number
4. List of skills (array)
5. Years of experience (number)
6. Education level/degree
7. Professional summary (2-3 sentences)

Format as JSON: {name, email, phone, skills: string[], experience: number, education, summary}`, trimmed)

	raw, src, err := g.generate(ctx, userPrompt, system, nil, llm.Options{Temperature: 0.7, MaxTokens: 500})
	if err != nil {
		return extract.ResumeProfile{}, err
	}
	if src == sourceQuota {
		return extract.ResumeProfile{Skills: []string{}, Summary: QuotaAdvisory}, nil
	}
	return extract.Resume(raw, trimmed), nil
}

// Chat answers a conversational message with the sales-assistant persona,
// carrying prior turns oldest-first.
func (g *Gateway) Chat(ctx context.Context, message string, history []prompt.Turn) (extract.ChatReply, error) {
	userPrompt := fmt.Sprintf(`Latest user message:
%s

Task:
- Respond as the company's sales consultant.
- Recommend only the services relevant to their industry or request.
- If unclear, ask ONE soft follow-up question.
- If they show intent to talk further, output the CTA buttons.
- Keep responses short and persuasive.`, message)

	raw, src, err := g.generate(ctx, userPrompt, prompt.ChatSystemDirective, history, llm.Options{Temperature: 0.7, MaxTokens: 450})
	if err != nil {
		return extract.ChatReply{}, err
	}
	if src == sourceQuota {
		return extract.ChatReply{Reply: QuotaAdvisory}, nil
	}
	return extract.Chat(raw), nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
