package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/datavex/gateway/internal/extract"
	"github.com/datavex/gateway/internal/scoring"
)

func TestPrintScoreResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreResult(
		scoring.Input{Budget: "$30,000", Location: "USA", ExperienceYears: 10, EmployeeCount: 20},
		scoring.Result{Score: 100, Tags: []string{"high-budget", "premium-region"}},
	)

	out := buf.String()
	for _, want := range []string{"Lead Assessment", "Score: 100 / 100", "high-budget", "premium-region", "$30,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScoreResult_NoTags(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(scoring.Input{}, scoring.Result{Score: 0, Tags: []string{}})

	if !strings.Contains(buf.String(), "Tags: none") {
		t.Errorf("output missing empty-tags line:\n%s", buf.String())
	}
}

func TestPrintResumeProfile(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumeProfile(extract.ResumeProfile{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: []string{"python", "sql"},
	})

	out := buf.String()
	for _, want := range []string{"Resume Profile", "Jane Doe", "jane@example.com", "python, sql"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
