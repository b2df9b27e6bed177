package types

import "image"

// PageDiffResult holds the comparison outcome for a single page pair.
type PageDiffResult struct {
	PageNumber       int     `json:"page_number"`       // 1-based
	ChangeCount      int     `json:"change_count"`      // Distinct changed regions after noise filtering
	ChangePercentage float64 `json:"change_percentage"` // 0..100, share of changed pixels
	Significant      bool    `json:"significant"`       // ChangePercentage above the significance threshold

	// Highlighted is the new page with red boxes drawn around changed
	// regions. Owned by the caller; excluded from JSON output.
	Highlighted image.Image `json:"-"`
}

// VisualChangeReport aggregates page-level diff results for a document pair.
type VisualChangeReport struct {
	PageResults             []PageDiffResult `json:"page_results"`
	TotalChanges            int              `json:"total_changes"`
	AverageChangePercentage float64          `json:"average_change_percentage"`

	// PageCountMismatch is set when the two documents have different page
	// counts; only the overlapping prefix is compared.
	PageCountMismatch string `json:"page_count_mismatch,omitempty"`

	// SkippedPages lists 1-based page numbers that could not be compared
	// (nil page image or cancelled task) and are absent from PageResults.
	SkippedPages []int `json:"skipped_pages,omitempty"`
}
