// Package compliance evaluates a document's extracted fields against its
// category's rule catalog entry and produces a graded, itemized report.
package compliance

import (
	"fmt"
	"strings"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// FieldPath is a dot-separated key resolved against a nested tree of maps,
// e.g. "parties.buyer.name". It replaces free-form dynamic attribute access
// with a single typed accessor.
type FieldPath string

// Resolve walks the path through nested map[string]any values. The boolean
// is false when any segment is absent or a non-map is traversed into.
func (p FieldPath) Resolve(fields map[string]any) (any, bool) {
	var current any = fields
	for _, key := range strings.Split(string(p), ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// stringField resolves a path to a non-blank string, or "" when the field is
// absent, blank, or not a string.
func stringField(fields map[string]any, path string) string {
	value, ok := FieldPath(path).Resolve(fields)
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// checkRequiredFields verifies every required dot-path key resolves to a
// present, non-blank value. Any miss fails the check at CRITICAL severity.
func checkRequiredFields(required []string, fields map[string]any) (types.CheckResult, []string) {
	missing := []string{}
	for _, field := range required {
		value, ok := FieldPath(field).Resolve(fields)
		if !ok || isBlank(value) {
			missing = append(missing, field)
		}
	}

	result := types.CheckResult{
		Name:    "Required Fields",
		Kind:    types.CheckKindRequiredField,
		Status:  types.CheckPass,
		Message: "All required fields present",
	}
	if len(missing) > 0 {
		result.Status = types.CheckFail
		result.Severity = types.SeverityCritical
		result.Issues = missing
		result.Message = fmt.Sprintf("Missing %d required fields: %s", len(missing), strings.Join(missing, ", "))
	}
	return result, missing
}

// isBlank reports whether a resolved value counts as missing: nil or a
// whitespace-only string.
func isBlank(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
