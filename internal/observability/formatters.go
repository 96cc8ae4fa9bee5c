// Package observability provides formatted output utilities for CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/datavex/gateway/internal/extract"
	"github.com/datavex/gateway/internal/scoring"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResult outputs a human-readable summary of a lead score.
func (p *Printer) PrintScoreResult(in scoring.Input, result scoring.Result) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Budget:     %s\n", valueOrDash(in.Budget)))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", valueOrDash(in.Location)))
	sb.WriteString(fmt.Sprintf("Experience: %.0f years\n", in.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Employees:  %.0f\n", in.EmployeeCount))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Score: %d / 100\n", result.Score))

	if len(result.Tags) > 0 {
		sb.WriteString("Tags:\n")
		for _, tag := range result.Tags {
			sb.WriteString(fmt.Sprintf("  • %s\n", tag))
		}
	} else {
		sb.WriteString("Tags: none\n")
	}

	p.printBox("Lead Assessment", strings.TrimRight(sb.String(), "\n"))
}

// PrintResumeProfile outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResumeProfile(profile extract.ResumeProfile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", valueOrDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", valueOrDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", valueOrDash(profile.Phone)))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", profile.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", valueOrDash(profile.Education)))

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:     %s\n", strings.Join(profile.Skills, ", ")))
	}
	if profile.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(profile.Summary)
	}

	p.printBox("Resume Profile", strings.TrimRight(sb.String(), "\n"))
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
