// Package types provides type definitions for structured data used throughout the document intelligence system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Significance tiers for a set of text changes, ordered from most to least consequential.
const (
	SignificanceCritical = "CRITICAL"
	SignificanceHigh     = "HIGH"
	SignificanceMedium   = "MEDIUM"
	SignificanceLow      = "LOW"
)

// Modification represents a deletion and an addition that were paired as a single edit.
type Modification struct {
	Old        string  `json:"old"`
	New        string  `json:"new"`
	Similarity float64 `json:"similarity"` // Rounded to 3 decimals, always in (0.6, 1.0]
}

// CriticalChange details a single change that touched critical contract vocabulary.
type CriticalChange struct {
	Type       string   `json:"type"` // "addition", "deletion", or "modification"
	Content    string   `json:"content,omitempty"`
	OldContent string   `json:"old_content,omitempty"` // Set for modifications
	NewContent string   `json:"new_content,omitempty"` // Set for modifications
	Keywords   []string `json:"keywords"`              // Critical terms found, sorted, deduplicated
}

// TextChangeSet is the full result of comparing two text versions.
// A line appears in at most one of Additions/Deletions/Modifications.
type TextChangeSet struct {
	Additions        []string         `json:"additions"`
	Deletions        []string         `json:"deletions"`
	Modifications    []Modification   `json:"modifications"`
	ChangePercentage float64          `json:"change_percentage"` // 100 * changed lines / new line count
	Significance     string           `json:"significance"`
	ChangesSummary   string           `json:"changes_summary"`
	TextDiff         string           `json:"text_diff"`
	CriticalChanges  []CriticalChange `json:"critical_changes"`
}

// TotalChanges returns the number of changed lines across all three categories.
func (c *TextChangeSet) TotalChanges() int {
	return len(c.Additions) + len(c.Deletions) + len(c.Modifications)
}
