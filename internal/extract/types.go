// Package extract turns raw, untrusted model text into typed results.
// Every shape is parsed JSON-first with a heuristic fallback, and every
// path is total: garbage in, best-effort result out, never an error.
package extract

// ContentSuggestions is the result shape for content improvement calls.
type ContentSuggestions struct {
	Suggestions []string `json:"suggestions"`
}

// SEOSuggestions is the result shape for SEO analysis calls.
type SEOSuggestions struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	Suggestions     []string `json:"suggestions"`
	SEOScore        int      `json:"seoScore"`
}

// ResumeProfile is the result shape for resume parsing calls.
type ResumeProfile struct {
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience"`
	Education       string   `json:"education,omitempty"`
	Summary         string   `json:"summary,omitempty"`
}

// ChatReply is the result shape for conversational calls.
type ChatReply struct {
	Reply string `json:"reply"`
}

// SEODefaults carries the caller's original values, used whenever the
// model output lacks a field.
type SEODefaults struct {
	Title       string
	Description string
	Keywords    []string
}
