package extract

import (
	"github.com/xeipuuv/gojsonschema"
)

// BalancedJSON returns the shortest span starting at the first '{' and
// ending at its matching '}'. String literals and escapes are respected so
// braces inside values do not break the scan. Returns false when no
// balanced object exists.
func BalancedJSON(raw string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", false
}

// Per-shape schemas for model output. Validation is deliberately loose:
// every field is optional and only type mismatches reject the document,
// pushing the call onto the heuristic path.
const (
	seoSchema = `{
	  "type": "object",
	  "properties": {
	    "metaTitle":       {"type": "string"},
	    "metaDescription": {"type": "string"},
	    "keywords":        {"type": "array", "items": {"type": "string"}},
	    "suggestions":     {"type": "array", "items": {"type": "string"}},
	    "seoScore":        {"type": "number"}
	  }
	}`

	resumeSchema = `{
	  "type": "object",
	  "properties": {
	    "name":       {"type": "string"},
	    "email":      {"type": "string"},
	    "phone":      {"type": "string"},
	    "skills":     {"type": "array", "items": {"type": "string"}},
	    "experience": {"type": "number"},
	    "education":  {"type": "string"},
	    "summary":    {"type": "string"}
	  }
	}`
)

// validJSON reports whether doc conforms to the given schema. Schema load
// failures count as invalid; the caller falls back to heuristics either way.
func validJSON(schema, doc string) bool {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(doc),
	)
	if err != nil {
		return false
	}
	return result.Valid()
}
