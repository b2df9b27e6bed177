package textdiff

import (
	"fmt"
	"strings"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// summaryItemLimit is how many critical additions/deletions the summary
// string names before trailing off.
const summaryItemLimit = 3

// generateSummary produces the human-readable one-line summary of a change set.
func generateSummary(additions, deletions []string, mods []types.Modification) string {
	var parts []string
	if len(additions) > 0 {
		parts = append(parts, fmt.Sprintf("%d addition(s)", len(additions)))
	}
	if len(deletions) > 0 {
		parts = append(parts, fmt.Sprintf("%d deletion(s)", len(deletions)))
	}
	if len(mods) > 0 {
		parts = append(parts, fmt.Sprintf("%d modification(s)", len(mods)))
	}
	if len(parts) == 0 {
		return "No changes detected"
	}

	summary := fmt.Sprintf("Document updated with %s.", strings.Join(parts, ", "))

	var criticalItems []string
	for i, add := range additions {
		if i >= summaryItemLimit {
			break
		}
		if containsCriticalKeyword(add) {
			criticalItems = append(criticalItems, "Added: "+truncate(add, 50))
		}
	}
	for i, del := range deletions {
		if i >= summaryItemLimit {
			break
		}
		if containsCriticalKeyword(del) {
			criticalItems = append(criticalItems, "Removed: "+truncate(del, 50))
		}
	}
	if len(criticalItems) > 0 {
		summary += " Critical changes: " + strings.Join(criticalItems, "; ")
	}
	return summary
}

// formatDiff renders the change set as a readable diff listing.
func formatDiff(additions, deletions []string, mods []types.Modification) string {
	var lines []string

	if len(additions) > 0 {
		lines = append(lines, "+ ADDITIONS:")
		for _, add := range additions {
			lines = append(lines, "  + "+add)
		}
		lines = append(lines, "")
	}
	if len(deletions) > 0 {
		lines = append(lines, "- DELETIONS:")
		for _, del := range deletions {
			lines = append(lines, "  - "+del)
		}
		lines = append(lines, "")
	}
	if len(mods) > 0 {
		lines = append(lines, "~ MODIFICATIONS:")
		for _, mod := range mods {
			lines = append(lines, "  OLD: "+mod.Old)
			lines = append(lines, "  NEW: "+mod.New)
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

// truncate shortens s to max runes with an ellipsis marker.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s + "..."
}
