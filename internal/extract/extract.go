package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/datavex/gateway/internal/llm"
)

// Fixed fallback strings used when nothing useful can be extracted.
const (
	genericSuggestion = "Consider adding more detail and examples to improve engagement."
	clarifyReply      = "Thanks! Could you share a little more about your project so I can guide you properly?"
	neutralSEOScore   = 70
	maxHeuristicSEO   = 5
)

var (
	listItemPattern = regexp.MustCompile(`^\s*(?:[-•]|\d+\.)\s*`)
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// SkillVocabulary is the fixed keyword set scanned during heuristic resume
// parsing. Kept as data so deployments can extend it.
var SkillVocabulary = []string{
	"javascript", "python", "react", "node", "sql", "aws", "docker",
	"typescript", "java", "php", "html", "css", "git", "agile",
}

// Content extracts an ordered suggestion list from model output. JSON with
// a "suggestions" array wins; otherwise list-marker lines are collected.
func Content(raw string) ContentSuggestions {
	cleaned := llm.CleanJSONBlock(raw)

	if doc, ok := BalancedJSON(cleaned); ok {
		var parsed ContentSuggestions
		if err := json.Unmarshal([]byte(doc), &parsed); err == nil && len(parsed.Suggestions) > 0 {
			return parsed
		}
	}

	var suggestions []string
	for _, line := range strings.Split(raw, "\n") {
		if !listItemPattern.MatchString(line) || strings.TrimSpace(line) == "" {
			continue
		}
		item := strings.TrimSpace(listItemPattern.ReplaceAllString(line, ""))
		if item != "" {
			suggestions = append(suggestions, item)
		}
	}
	if len(suggestions) == 0 {
		suggestions = []string{genericSuggestion}
	}
	return ContentSuggestions{Suggestions: suggestions}
}

// SEO extracts SEO fields from model output, falling back to the caller's
// original values for anything missing.
func SEO(raw string, defaults SEODefaults) SEOSuggestions {
	cleaned := llm.CleanJSONBlock(raw)

	if doc, ok := BalancedJSON(cleaned); ok && validJSON(seoSchema, doc) {
		var parsed struct {
			MetaTitle       string   `json:"metaTitle"`
			MetaDescription string   `json:"metaDescription"`
			Keywords        []string `json:"keywords"`
			Suggestions     []string `json:"suggestions"`
			SEOScore        float64  `json:"seoScore"`
		}
		if err := json.Unmarshal([]byte(doc), &parsed); err == nil {
			out := SEOSuggestions{
				MetaTitle:       parsed.MetaTitle,
				MetaDescription: parsed.MetaDescription,
				Keywords:        parsed.Keywords,
				Suggestions:     parsed.Suggestions,
				SEOScore:        clampScore(int(parsed.SEOScore)),
			}
			if out.MetaTitle == "" {
				out.MetaTitle = defaults.Title
			}
			if out.MetaDescription == "" {
				out.MetaDescription = defaults.Description
			}
			if out.Keywords == nil {
				out.Keywords = []string{}
			}
			if out.Suggestions == nil {
				out.Suggestions = []string{}
			}
			if parsed.SEOScore == 0 {
				out.SEOScore = neutralSEOScore
			}
			return out
		}
	}

	// Heuristic path: first five non-empty lines become suggestions.
	var suggestions []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			suggestions = append(suggestions, trimmed)
			if len(suggestions) == maxHeuristicSEO {
				break
			}
		}
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	keywords := defaults.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return SEOSuggestions{
		MetaTitle:       defaults.Title,
		MetaDescription: defaults.Description,
		Keywords:        keywords,
		Suggestions:     suggestions,
		SEOScore:        neutralSEOScore,
	}
}

// Resume extracts a candidate profile from model output. When no valid
// JSON is present, the original resume text itself is scanned for an
// email, a phone number, and known skill keywords.
func Resume(raw, resumeText string) ResumeProfile {
	cleaned := llm.CleanJSONBlock(raw)

	if doc, ok := BalancedJSON(cleaned); ok && validJSON(resumeSchema, doc) {
		var parsed ResumeProfile
		if err := json.Unmarshal([]byte(doc), &parsed); err == nil {
			if parsed.Skills == nil {
				parsed.Skills = []string{}
			}
			return parsed
		}
	}

	profile := ResumeProfile{
		Email:  emailPattern.FindString(resumeText),
		Phone:  strings.TrimSpace(phonePattern.FindString(resumeText)),
		Skills: []string{},
	}
	lower := strings.ToLower(resumeText)
	for _, skill := range SkillVocabulary {
		if strings.Contains(lower, skill) {
			profile.Skills = append(profile.Skills, skill)
		}
	}
	return profile
}

// Chat extracts the reply text. A JSON object with a non-empty "reply"
// field is honored; otherwise the whole trimmed output is the reply, and an
// empty output becomes a clarification request.
func Chat(raw string) ChatReply {
	cleaned := llm.CleanJSONBlock(raw)

	if doc, ok := BalancedJSON(cleaned); ok {
		var parsed ChatReply
		if err := json.Unmarshal([]byte(doc), &parsed); err == nil && strings.TrimSpace(parsed.Reply) != "" {
			return ChatReply{Reply: strings.TrimSpace(parsed.Reply)}
		}
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		reply = clarifyReply
	}
	return ChatReply{Reply: reply}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
