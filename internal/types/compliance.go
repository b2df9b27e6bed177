package types

// Overall compliance statuses, from clean to blocking.
const (
	StatusCompliant          = "COMPLIANT"
	StatusNeedsReview        = "NEEDS_REVIEW"
	StatusPartiallyCompliant = "PARTIALLY_COMPLIANT"
	StatusNonCompliant       = "NON_COMPLIANT"
)

// Per-check statuses.
const (
	CheckPass    = "PASS"
	CheckWarning = "WARNING"
	CheckFail    = "FAIL"
)

// Check kinds evaluated by the compliance engine, in evaluation order.
const (
	CheckKindRequiredField = "REQUIRED_FIELD"
	CheckKindSignature     = "SIGNATURE"
	CheckKindClause        = "CLAUSE_CHECK"
	CheckKindDate          = "DATE_CHECK"
	CheckKindAmount        = "AMOUNT_CHECK"
	CheckKindFormat        = "FORMAT_CHECK"
)

// Check severities.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
)

// CheckResult is the outcome of one check kind for one document.
type CheckResult struct {
	Name     string   `json:"check_name"`
	Kind     string   `json:"check_type"`
	Status   string   `json:"status"`
	Issues   []string `json:"issues,omitempty"`
	Message  string   `json:"message"`
	Severity string   `json:"severity,omitempty"` // Empty when the check passed
}

// ComplianceReport is the graded, itemized result of a compliance evaluation.
type ComplianceReport struct {
	OverallStatus       string        `json:"overall_status"`
	Checks              []CheckResult `json:"checks"`
	CriticalIssues      int           `json:"critical_issues"`
	Warnings            int           `json:"warnings"`
	Suggestions         int           `json:"suggestions"`
	MissingSignatures   []string      `json:"missing_signatures"`
	MissingFields       []string      `json:"missing_fields"`
	DateInconsistencies []string      `json:"date_inconsistencies"`
	FormatIssues        []string      `json:"format_issues"`
	RequiresReview      bool          `json:"requires_review"`
}
