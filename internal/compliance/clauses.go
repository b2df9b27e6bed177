package compliance

import (
	"fmt"
	"strings"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// checkClauses verifies each required clause name appears in the document's
// concatenated clause text. Matching is a case-insensitive substring search
// with underscores treated as spaces. Any absent clause fails the check at
// HIGH severity.
func checkClauses(required []string, fields map[string]any) types.CheckResult {
	clauseText := strings.ToLower(strings.Join(clauseStrings(fields), " "))

	missing := []string{}
	for _, clause := range required {
		needle := strings.ReplaceAll(strings.ToLower(clause), "_", " ")
		if !strings.Contains(clauseText, needle) {
			missing = append(missing, clause)
		}
	}

	result := types.CheckResult{
		Name:    "Required Clauses",
		Kind:    types.CheckKindClause,
		Status:  types.CheckPass,
		Message: "All required clauses present",
	}
	if len(missing) > 0 {
		result.Status = types.CheckFail
		result.Severity = types.SeverityHigh
		result.Issues = missing
		result.Message = fmt.Sprintf("Missing %d required clauses: %s", len(missing), strings.Join(missing, ", "))
	}
	return result
}

// clauseStrings pulls the free-text clause contents from fields["clauses"].
func clauseStrings(fields map[string]any) []string {
	var clauses []string
	switch list := fields["clauses"].(type) {
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				clauses = append(clauses, s)
			}
		}
	case []string:
		clauses = list
	}
	return clauses
}
