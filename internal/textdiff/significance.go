package textdiff

import (
	"sort"
	"strings"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// criticalKeywords are the financial and contractual terms whose presence in
// a changed line marks it as critical. Matching is case-insensitive substring.
var criticalKeywords = []string{
	"price", "amount", "date", "deadline", "payment",
	"signature", "contract", "agreement", "terms",
	"conditions", "buyer", "seller", "property",
	"loan", "closing", "earnest", "deposit",
}

// Thresholds for the significance tiers.
const (
	criticalCountThreshold = 3  // critical occurrences for CRITICAL
	volumeThreshold        = 20 // total changed lines for MEDIUM
)

// containsCriticalKeyword reports whether text mentions any critical term.
func containsCriticalKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractCriticalKeywords returns the critical terms found in text, in
// vocabulary order.
func extractCriticalKeywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// classifySignificance assigns the severity tier for a change set. A
// modification counts as one critical occurrence if either side is critical.
func classifySignificance(additions, deletions []string, mods []types.Modification) string {
	critical := 0
	for _, line := range additions {
		if containsCriticalKeyword(line) {
			critical++
		}
	}
	for _, line := range deletions {
		if containsCriticalKeyword(line) {
			critical++
		}
	}
	for _, mod := range mods {
		if containsCriticalKeyword(mod.Old) || containsCriticalKeyword(mod.New) {
			critical++
		}
	}

	total := len(additions) + len(deletions) + len(mods)
	switch {
	case critical >= criticalCountThreshold:
		return types.SignificanceCritical
	case critical >= 1:
		return types.SignificanceHigh
	case total > volumeThreshold:
		return types.SignificanceMedium
	default:
		return types.SignificanceLow
	}
}

// identifyCriticalChanges builds the detailed critical-change records.
func identifyCriticalChanges(additions, deletions []string, mods []types.Modification) []types.CriticalChange {
	critical := []types.CriticalChange{}

	for _, line := range additions {
		if containsCriticalKeyword(line) {
			critical = append(critical, types.CriticalChange{
				Type:     "addition",
				Content:  line,
				Keywords: extractCriticalKeywords(line),
			})
		}
	}
	for _, line := range deletions {
		if containsCriticalKeyword(line) {
			critical = append(critical, types.CriticalChange{
				Type:     "deletion",
				Content:  line,
				Keywords: extractCriticalKeywords(line),
			})
		}
	}
	for _, mod := range mods {
		if containsCriticalKeyword(mod.Old) || containsCriticalKeyword(mod.New) {
			critical = append(critical, types.CriticalChange{
				Type:       "modification",
				OldContent: mod.Old,
				NewContent: mod.New,
				Keywords:   mergeKeywords(extractCriticalKeywords(mod.Old), extractCriticalKeywords(mod.New)),
			})
		}
	}
	return critical
}

// mergeKeywords unions two keyword lists, sorted and deduplicated.
func mergeKeywords(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, kw := range append(append([]string{}, a...), b...) {
		if !seen[kw] {
			seen[kw] = true
			merged = append(merged, kw)
		}
	}
	sort.Strings(merged)
	return merged
}
