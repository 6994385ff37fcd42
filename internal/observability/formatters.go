// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSignals outputs a human-readable summary of the extracted signals.
func (p *Printer) PrintSignals(signals *types.ExtractedSignals) {
	if signals == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Technologies:  %s\n", joinCapped(signals.Technologies)))
	sb.WriteString(fmt.Sprintf("Prioritized:   %s\n", joinCapped(signals.PrioritizedTechnologies)))
	sb.WriteString(fmt.Sprintf("Roles:         %s\n", joinCapped(signals.Roles)))

	years := signals.YearsOfExperience
	if years == "" {
		years = "(not stated)"
	}
	sb.WriteString(fmt.Sprintf("Experience:    %s\n", years))

	if signals.Education != "" {
		sb.WriteString(fmt.Sprintf("Education:     %s\n", signals.Education))
	}
	if len(signals.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Projects:      %d extracted\n", len(signals.Projects)))
	}
	if len(signals.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certs:         %d extracted\n", len(signals.Certifications)))
	}

	p.printBox("Extracted Signals", strings.TrimRight(sb.String(), "\n"))
}

// PrintDocument outputs the first lines of a generated document.
func (p *Printer) PrintDocument(title, markdown string) {
	lines := strings.Split(markdown, "\n")
	preview := lines
	if len(preview) > maxItemsToShow*2 {
		preview = preview[:maxItemsToShow*2]
		preview = append(preview, "...")
	}
	p.printBox(title, strings.Join(preview, "\n"))
}

// PrintInterview outputs the mock interview questions.
func (p *Printer) PrintInterview(qa []types.QAItem) {
	var sb strings.Builder
	for i, item := range qa {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item.Question))
	}
	p.printBox("Mock Interview", strings.TrimRight(sb.String(), "\n"))
}

func joinCapped(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	if len(items) > maxItemsToShow {
		return strings.Join(items[:maxItemsToShow], ", ") + ", ..."
	}
	return strings.Join(items, ", ")
}
