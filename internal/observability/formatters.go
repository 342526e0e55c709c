// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBreakdown outputs a human-readable summary of a scoring result.
func (p *Printer) PrintBreakdown(b *types.Breakdown) {
	if b == nil {
		return
	}

	var sb strings.Builder

	if b.Engine == types.EngineATS {
		sb.WriteString(fmt.Sprintf("Score:    %.0f / 100\n", b.FinalScore))
	} else {
		sb.WriteString(fmt.Sprintf("Score:    %.1f / 10\n", b.FinalScore))
	}
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", b.Description))
	if b.Degraded {
		sb.WriteString("Note:     partial signals, some scores are neutral\n")
	}
	sb.WriteString("\n")

	if len(b.Scores) > 0 {
		sb.WriteString("Signals:\n")
		names := make([]string, 0, len(b.Scores))
		for name := range b.Scores {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("  %-18s %.2f", name, b.Scores[name]))
			if w, ok := b.Weights[name]; ok && w > 0 {
				sb.WriteString(fmt.Sprintf("  (weight %.2f)", w))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(b.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", joinCapped(b.MatchedSkills, maxItemsToShow)))
	}
	if len(b.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", joinCapped(b.MissingSkills, maxItemsToShow)))
	}
	if b.ResumeYears > 0 || b.JobYears > 0 {
		sb.WriteString(fmt.Sprintf("Years:    resume %d, job %d\n", b.ResumeYears, b.JobYears))
	}
	if b.ResumeDegree != "" || b.JobDegree != "" {
		sb.WriteString(fmt.Sprintf("Degrees:  resume %q, job %q\n", b.ResumeDegree, b.JobDegree))
	}

	p.printBox("MATCH BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the templated improvement suggestions.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recs []string) {
	if len(recs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO RECOMMENDATIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", rec))
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintContact outputs the contact completeness flags.
func (p *Printer) PrintContact(c types.ContactInfo) {
	var sb strings.Builder
	if c.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", c.Name))
	}
	sb.WriteString(fmt.Sprintf("Email:    %s\n", checkmark(c.HasEmail)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", checkmark(c.HasPhone)))
	sb.WriteString(fmt.Sprintf("Social:   %s\n", checkmark(c.HasSocial)))
	sb.WriteString(fmt.Sprintf("Location: %s", checkmark(c.HasLocation)))

	p.printBox("CONTACT INFO", sb.String())
}

func checkmark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func joinCapped(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s ... and %d more", strings.Join(items[:n], ", "), len(items)-n)
}
