package compliance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/doc-intelligence/internal/rules"
	"github.com/jonathan/doc-intelligence/internal/types"
)

// Engine evaluates documents against the rule catalog. It holds no mutable
// state after construction and is safe for concurrent use.
type Engine struct {
	catalog  *rules.Catalog
	validate *validator.Validate
}

// NewEngine returns an Engine backed by the given catalog, or the default
// catalog when nil.
func NewEngine(catalog *rules.Catalog) *Engine {
	if catalog == nil {
		catalog = rules.Default()
	}
	return &Engine{
		catalog:  catalog,
		validate: validator.New(),
	}
}

// KnownCategory reports whether the catalog has rules for category.
// Unknown categories still evaluate (vacuously passing); callers should log
// the miss rather than mask it.
func (e *Engine) KnownCategory(category string) bool {
	_, ok := e.catalog.Lookup(category)
	return ok
}

// Check evaluates fields against category's rules using the current time
// for date-relative checks.
func (e *Engine) Check(category string, fields map[string]any) *types.ComplianceReport {
	return e.CheckAt(category, fields, time.Now())
}

// CheckAt is Check with an injectable "now", required for deterministic
// evaluation of date-relative rules. Given identical inputs it always
// produces structurally identical reports.
func (e *Engine) CheckAt(category string, fields map[string]any, now time.Time) *types.ComplianceReport {
	entry, _ := e.catalog.Lookup(category)
	if fields == nil {
		fields = map[string]any{}
	}

	fieldCheck, missingFields := checkRequiredFields(entry.RequiredFields, fields)
	signatureCheck, missingSignatures := checkSignatures(entry.RequiredSignatures, fields)
	clauseCheck := checkClauses(entry.RequiredClauses, fields)
	dateCheck := checkDates(entry.DateChecks, fields, now)
	amountCheck := checkAmounts(entry.AmountChecks, fields)
	formatCheck := checkFormats(entry.FormatChecks, fields, e.validate)

	checks := []types.CheckResult{
		fieldCheck, signatureCheck, clauseCheck, dateCheck, amountCheck, formatCheck,
	}

	criticalIssues := 0
	for _, check := range []types.CheckResult{fieldCheck, signatureCheck, clauseCheck} {
		if check.Status == types.CheckFail {
			criticalIssues++
		}
	}

	// Date and amount problems need review, not a compliance block: both
	// WARNING and multi-issue date FAILs count as warnings here.
	warnings := 0
	for _, check := range []types.CheckResult{dateCheck, amountCheck} {
		if check.Status != types.CheckPass {
			warnings++
		}
	}

	suggestions := len(formatCheck.Issues)

	overall := types.StatusCompliant
	switch {
	case criticalIssues > 0:
		overall = types.StatusNonCompliant
	case warnings > 2:
		overall = types.StatusPartiallyCompliant
	case warnings > 0:
		overall = types.StatusNeedsReview
	}

	return &types.ComplianceReport{
		OverallStatus:       overall,
		Checks:              checks,
		CriticalIssues:      criticalIssues,
		Warnings:            warnings,
		Suggestions:         suggestions,
		MissingSignatures:   missingSignatures,
		MissingFields:       missingFields,
		DateInconsistencies: append([]string{}, dateCheck.Issues...),
		FormatIssues:        append([]string{}, formatCheck.Issues...),
		RequiresReview:      criticalIssues > 0 || warnings > 2,
	}
}
