package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_JSONPath(t *testing.T) {
	raw := `Here you go: {"suggestions": ["tighten the intro", "add a CTA"]}`
	got := Content(raw)
	assert.Equal(t, []string{"tighten the intro", "add a CTA"}, got.Suggestions)
}

func TestContent_ListMarkers(t *testing.T) {
	raw := "Some preamble\n- improve headings\n2. add keywords\nplain line without marker\n• use shorter sentences"
	got := Content(raw)
	assert.Equal(t, []string{"improve headings", "add keywords", "use shorter sentences"}, got.Suggestions)
}

func TestContent_NothingQualifies(t *testing.T) {
	got := Content("just a paragraph of prose with no list items")
	require.Len(t, got.Suggestions, 1)
	assert.Equal(t, genericSuggestion, got.Suggestions[0])
}

func TestContent_EmptyInput(t *testing.T) {
	got := Content("")
	require.Len(t, got.Suggestions, 1)
}

func TestSEO_JSONPath(t *testing.T) {
	raw := "```json\n" + `{"metaTitle": "Better Title", "metaDescription": "Better desc", "keywords": ["ai", "data"], "suggestions": ["add alt text"], "seoScore": 82}` + "\n```"
	got := SEO(raw, SEODefaults{Title: "Old", Description: "Old desc"})

	assert.Equal(t, "Better Title", got.MetaTitle)
	assert.Equal(t, "Better desc", got.MetaDescription)
	assert.Equal(t, []string{"ai", "data"}, got.Keywords)
	assert.Equal(t, []string{"add alt text"}, got.Suggestions)
	assert.Equal(t, 82, got.SEOScore)
}

func TestSEO_MissingFieldsFallBackToCaller(t *testing.T) {
	raw := `{"suggestions": ["one"]}`
	got := SEO(raw, SEODefaults{Title: "My Title", Description: "My desc"})

	assert.Equal(t, "My Title", got.MetaTitle)
	assert.Equal(t, "My desc", got.MetaDescription)
	assert.Equal(t, neutralSEOScore, got.SEOScore, "absent score defaults to neutral")
	assert.NotNil(t, got.Keywords)
}

func TestSEO_InvalidTypesFallThroughToHeuristic(t *testing.T) {
	// keywords as a string violates the schema, so the heuristic runs.
	raw := "{\"keywords\": \"ai, data\"}\nFirst tip\nSecond tip"
	got := SEO(raw, SEODefaults{Title: "T", Keywords: []string{"orig"}})

	assert.Equal(t, "T", got.MetaTitle)
	assert.Equal(t, []string{"orig"}, got.Keywords)
	assert.Equal(t, neutralSEOScore, got.SEOScore)
}

func TestSEO_HeuristicFirstFiveLines(t *testing.T) {
	raw := "one\n\ntwo\nthree\nfour\nfive\nsix"
	got := SEO(raw, SEODefaults{})

	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, got.Suggestions)
	assert.Equal(t, neutralSEOScore, got.SEOScore)
}

func TestSEO_ScoreClamped(t *testing.T) {
	got := SEO(`{"seoScore": 250}`, SEODefaults{})
	assert.Equal(t, 100, got.SEOScore)
}

func TestResume_JSONPath(t *testing.T) {
	raw := `{"name": "Jane Doe", "email": "jane@example.com", "skills": ["python", "sql"], "experience": 6, "education": "BSc", "summary": "Data engineer."}`
	got := Resume(raw, "ignored")

	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, []string{"python", "sql"}, got.Skills)
	assert.Equal(t, float64(6), got.ExperienceYears)
	assert.Equal(t, "BSc", got.Education)
}

func TestResume_HeuristicFallback(t *testing.T) {
	resumeText := "Jane Doe\njane@example.com\n+1 555-123-4567\nExperienced in Python and SQL deployments on AWS."
	got := Resume("no json here", resumeText)

	assert.Equal(t, "jane@example.com", got.Email)
	assert.NotEmpty(t, got.Phone)
	assert.Contains(t, got.Skills, "python")
	assert.Contains(t, got.Skills, "sql")
	assert.Contains(t, got.Skills, "aws")
	assert.Equal(t, float64(0), got.ExperienceYears)
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Education)
}

func TestResume_ExperienceAsStringRejectsJSON(t *testing.T) {
	raw := `{"experience": "six years", "email": "model@example.com"}`
	got := Resume(raw, "reach me at real@example.com, I know docker")

	// Schema rejection means the original text is trusted, not the model.
	assert.Equal(t, "real@example.com", got.Email)
	assert.Contains(t, got.Skills, "docker")
}

func TestChat_PlainText(t *testing.T) {
	got := Chat("  Here's the beauty of what we can do.  ")
	assert.Equal(t, "Here's the beauty of what we can do.", got.Reply)
}

func TestChat_JSONReply(t *testing.T) {
	got := Chat(`{"reply": "Let's talk."}`)
	assert.Equal(t, "Let's talk.", got.Reply)
}

func TestChat_EmptyBecomesClarification(t *testing.T) {
	got := Chat("   ")
	assert.Equal(t, clarifyReply, got.Reply)
}

func TestBalancedJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "simple object",
			input: `before {"a": 1} after`,
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "nested objects",
			input: `x {"a": {"b": {"c": 2}}} y`,
			want:  `{"a": {"b": {"c": 2}}}`,
			ok:    true,
		},
		{
			name:  "braces inside strings",
			input: `{"text": "a } b { c"}`,
			want:  `{"text": "a } b { c"}`,
			ok:    true,
		},
		{
			name:  "escaped quotes",
			input: `{"q": "he said \"}\""}`,
			want:  `{"q": "he said \"}\""}`,
			ok:    true,
		},
		{
			name:  "unbalanced",
			input: `{"a": 1`,
			ok:    false,
		},
		{
			name:  "no object",
			input: "plain text",
			ok:    false,
		},
		{
			name:  "shortest span wins",
			input: `{"first": 1} {"second": 2}`,
			want:  `{"first": 1}`,
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BalancedJSON(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Totality: arbitrary garbage must produce a well-formed result, never a panic.
func TestExtraction_Total(t *testing.T) {
	inputs := []string{
		"", "   ", "{", "}", "{{{{", `{"a":`, "\x00\xff", "```json\n\n```",
		`{"suggestions": 42}`, "• \n- \n1. ",
	}
	for _, in := range inputs {
		assert.NotNil(t, Content(in).Suggestions)
		assert.NotNil(t, SEO(in, SEODefaults{}).Suggestions)
		assert.NotNil(t, Resume(in, in).Skills)
		assert.NotEmpty(t, Chat(in).Reply)
	}
}
