// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/doc-intelligence/internal/types"
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

// PrintTextChanges outputs a human-readable summary of a text change set.
func (p *Printer) PrintTextChanges(changes *types.TextChangeSet) {
	if changes == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Significance:  %s\n", changes.Significance))
	sb.WriteString(fmt.Sprintf("Changed:       %.2f%% of lines\n", changes.ChangePercentage))
	sb.WriteString(fmt.Sprintf("Additions:     %d\n", len(changes.Additions)))
	sb.WriteString(fmt.Sprintf("Deletions:     %d\n", len(changes.Deletions)))
	sb.WriteString(fmt.Sprintf("Modifications: %d\n", len(changes.Modifications)))

	if len(changes.CriticalChanges) > 0 {
		sb.WriteString("\nCritical changes:\n")
		count := min(len(changes.CriticalChanges), maxItemsToShow)
		for i := 0; i < count; i++ {
			cc := changes.CriticalChanges[i]
			content := cc.Content
			if cc.Type == "modification" {
				content = cc.NewContent
			}
			if len(content) > 40 {
				content = content[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", cc.Type, content))
		}
		if len(changes.CriticalChanges) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(changes.CriticalChanges)-maxItemsToShow))
		}
	}

	p.printBox("TEXT CHANGES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVisualChanges outputs the per-page visual diff metrics.
func (p *Printer) PrintVisualChanges(report *types.VisualChangeReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages compared: %d\n", len(report.PageResults)))
	sb.WriteString(fmt.Sprintf("Total changes:  %d\n", report.TotalChanges))
	sb.WriteString(fmt.Sprintf("Average change: %.2f%%\n", report.AverageChangePercentage))

	if report.PageCountMismatch != "" {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", report.PageCountMismatch))
	}
	if len(report.SkippedPages) > 0 {
		sb.WriteString(fmt.Sprintf("⚠ Skipped pages: %v\n", report.SkippedPages))
	}

	count := min(len(report.PageResults), maxItemsToShow)
	if count > 0 {
		sb.WriteString("\n")
	}
	for i := 0; i < count; i++ {
		page := report.PageResults[i]
		marker := " "
		if page.Significant {
			marker = "!"
		}
		sb.WriteString(fmt.Sprintf("%s Page %d: %d region(s), %.2f%%\n",
			marker, page.PageNumber, page.ChangeCount, page.ChangePercentage))
	}
	if len(report.PageResults) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more pages\n", len(report.PageResults)-maxItemsToShow))
	}

	p.printBox("VISUAL CHANGES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComplianceReport outputs the graded compliance results.
func (p *Printer) PrintComplianceReport(report *types.ComplianceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:    %s\n", report.OverallStatus))
	sb.WriteString(fmt.Sprintf("Critical:  %d  Warnings: %d  Suggestions: %d\n",
		report.CriticalIssues, report.Warnings, report.Suggestions))
	if report.RequiresReview {
		sb.WriteString("⚠ Requires human review\n")
	}
	sb.WriteString("\n")

	for _, check := range report.Checks {
		marker := "✓"
		switch check.Status {
		case types.CheckWarning:
			marker = "~"
		case types.CheckFail:
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %-18s %s\n", marker, check.Name, check.Status))
	}

	if len(report.MissingFields) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing fields: %s\n", strings.Join(report.MissingFields, ", ")))
	}
	if len(report.MissingSignatures) > 0 {
		sb.WriteString(fmt.Sprintf("Missing signatures: %s\n", strings.Join(report.MissingSignatures, ", ")))
	}

	p.printBox("COMPLIANCE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
