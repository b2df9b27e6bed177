package compliance

import (
	"strings"
	"time"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// dateLayouts are the accepted input formats, tried in order. The US slash
// layout is tried before day-first so ambiguous dates resolve as US.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseDate parses a date field value. Unparsable or absent values return
// ok=false, which makes the relevant sub-check not applicable rather than
// failed; the missing-field check already penalizes absent fields.
func parseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// dateField resolves and parses a date field by name.
func dateField(fields map[string]any, path string) (time.Time, bool) {
	value, ok := FieldPath(path).Resolve(fields)
	if !ok {
		return time.Time{}, false
	}
	return parseDate(value)
}

// checkDates runs the named date-logic checks. One issue yields WARNING,
// more than one yields FAIL; severity scales with the issue count.
func checkDates(checks []string, fields map[string]any, now time.Time) types.CheckResult {
	var issues []string

	for _, check := range checks {
		switch check {
		case "closing_date_in_future":
			if closing, ok := dateField(fields, "closing_date"); ok && closing.Before(now) {
				issues = append(issues, "Closing date is in the past")
			}

		case "contract_date_before_closing":
			contract, okC := dateField(fields, "contract_date")
			closing, okD := dateField(fields, "closing_date")
			if okC && okD && !contract.Before(closing) {
				issues = append(issues, "Contract date must be before closing date")
			}

		case "closing_date_reasonable":
			if closing, ok := dateField(fields, "closing_date"); ok {
				days := daysBetween(now, closing)
				if days < 0 {
					issues = append(issues, "Closing date is in the past")
				} else if days > 180 {
					issues = append(issues, "Closing date is more than 6 months away")
				}
			}

		case "inspection_period_valid":
			deadline, okI := dateField(fields, "inspection_deadline")
			contract, okC := dateField(fields, "contract_date")
			if okI && okC {
				days := daysBetween(contract, deadline)
				if days < 1 {
					issues = append(issues, "Inspection period is too short (< 1 day)")
				} else if days > 30 {
					issues = append(issues, "Inspection period is unusually long (> 30 days)")
				}
			}

		case "application_date_valid":
			if appDate, ok := dateField(fields, "application_date"); ok && appDate.After(now) {
				issues = append(issues, "Application date is in the future")
			}

		case "effective_date_valid":
			if effective, ok := dateField(fields, "effective_date"); ok {
				days := daysBetween(now, effective)
				if days < 0 {
					days = -days
				}
				if days > 90 {
					issues = append(issues, "Effective date is more than 90 days from today")
				}
			}

		case "execution_date_valid":
			if exec, ok := dateField(fields, "execution_date"); ok && exec.After(now) {
				issues = append(issues, "Execution date is in the future")
			}
		}
	}

	result := types.CheckResult{
		Name:    "Date Consistency",
		Kind:    types.CheckKindDate,
		Status:  types.CheckPass,
		Message: "All dates are consistent",
	}
	switch {
	case len(issues) > 1:
		result.Status = types.CheckFail
		result.Severity = types.SeverityHigh
	case len(issues) == 1:
		result.Status = types.CheckWarning
		result.Severity = types.SeverityMedium
	}
	if len(issues) > 0 {
		result.Issues = issues
		result.Message = strings.Join(issues, "; ")
	}
	return result
}

// daysBetween returns the whole days from a to b, negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
