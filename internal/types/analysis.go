package types

// AnalysisReport merges the outputs of the engines that ran for one document
// pair. Sections for engines that did not run are nil.
type AnalysisReport struct {
	RunID         string              `json:"run_id"`
	TextChanges   *TextChangeSet      `json:"text_changes,omitempty"`
	VisualChanges *VisualChangeReport `json:"visual_changes,omitempty"`
	Compliance    *ComplianceReport   `json:"compliance,omitempty"`

	// Category is the document category used for compliance checking, if any.
	Category string `json:"category,omitempty"`

	// Notices carries non-fatal degradations (unknown category, skipped
	// pages) that callers should surface rather than mask.
	Notices []string `json:"notices,omitempty"`
}
