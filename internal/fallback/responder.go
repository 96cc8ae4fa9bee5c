// Package fallback provides canned replies for when no live completion is
// possible: missing credentials, exhausted quota, or a provider failure.
// It never touches the network and never fails.
package fallback

import "strings"

// Reply pairs a trigger keyword with its canned response. Matching is a
// case-insensitive substring check against the caller's prompt.
type Reply struct {
	Keyword string
	Text    string
}

// DefaultReplies returns the production keyword table, checked in order.
func DefaultReplies() []Reply {
	return []Reply{
		{
			Keyword: "seo",
			Text:    "Mock SEO suggestion: Consider adding more relevant keywords, improving meta descriptions, and optimizing for featured snippets.",
		},
		{
			Keyword: "content",
			Text:    "Mock content suggestion: Try adding a compelling introduction, use more examples, and include a clear call-to-action.",
		},
		{
			Keyword: "score",
			Text:    "85",
		},
	}
}

// Generic is returned when no keyword matches.
const Generic = "Mock AI response: This is a placeholder response. Configure your AI API key to get real suggestions."

// Responder dispatches canned replies by keyword.
type Responder struct {
	replies []Reply
}

// NewResponder creates a Responder. A nil table uses DefaultReplies.
func NewResponder(replies []Reply) *Responder {
	if replies == nil {
		replies = DefaultReplies()
	}
	return &Responder{replies: replies}
}

// Respond returns the canned reply for the first matching keyword, or the
// generic placeholder when nothing matches.
func (r *Responder) Respond(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, reply := range r.replies {
		if strings.Contains(lower, reply.Keyword) {
			return reply.Text
		}
	}
	return Generic
}
