package compliance

import (
	"fmt"
	"strings"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// checkSignatures compares required role labels against the type/signer_role
// of each entry in the document's signatures list. Any absent role fails the
// check at CRITICAL severity.
func checkSignatures(required []string, fields map[string]any) (types.CheckResult, []string) {
	present := signatureRoles(fields)

	missing := []string{}
	for _, role := range required {
		if !present[role] {
			missing = append(missing, role)
		}
	}

	result := types.CheckResult{
		Name:    "Signatures",
		Kind:    types.CheckKindSignature,
		Status:  types.CheckPass,
		Message: "All signatures present",
	}
	if len(missing) > 0 {
		result.Status = types.CheckFail
		result.Severity = types.SeverityCritical
		result.Issues = missing
		result.Message = fmt.Sprintf("Missing %d required signatures: %s", len(missing), strings.Join(missing, ", "))
	}
	return result, missing
}

// signatureRoles extracts the role labels from fields["signatures"], a list
// of objects carrying "type" or "signer_role". Entries of other shapes are
// ignored.
func signatureRoles(fields map[string]any) map[string]bool {
	roles := map[string]bool{}
	list, ok := fields["signatures"].([]any)
	if !ok {
		return roles
	}
	for _, item := range list {
		sig, ok := item.(map[string]any)
		if !ok {
			continue
		}
		role, _ := sig["type"].(string)
		if role == "" {
			role, _ = sig["signer_role"].(string)
		}
		if role != "" {
			roles[role] = true
		}
	}
	return roles
}
