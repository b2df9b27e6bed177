package compliance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/doc-intelligence/internal/types"
)

var (
	phoneSeparators = regexp.MustCompile(`[-\s().]`)
	phoneDigits     = regexp.MustCompile(`^\d{10,11}$`)
	ssnDigits       = regexp.MustCompile(`^\d{9}$`)
)

// minLegalDescriptionLen is the length below which a legal description is
// presumed truncated by extraction.
const minLegalDescriptionLen = 20

// checkFormats runs the named format checks against their known field names.
// Format problems are advisory only: any issue yields a WARNING at LOW
// severity.
func checkFormats(checks []string, fields map[string]any, validate *validator.Validate) types.CheckResult {
	var issues []string

	for _, check := range checks {
		switch check {
		case "email_format":
			email := stringField(fields, "email")
			if email == "" {
				email = stringField(fields, "applicant_email")
			}
			if email != "" && validate.Var(email, "email") != nil {
				issues = append(issues, fmt.Sprintf("Invalid email format: %s", email))
			}

		case "phone_format":
			phone := stringField(fields, "phone")
			if phone == "" {
				phone = stringField(fields, "applicant_phone")
			}
			if phone != "" && !validPhone(phone) {
				issues = append(issues, fmt.Sprintf("Invalid phone format: %s", phone))
			}

		case "ssn_format":
			ssn := stringField(fields, "ssn")
			if ssn != "" && !validSSN(ssn) {
				issues = append(issues, "Invalid SSN format")
			}

		case "legal_description_format":
			desc := stringField(fields, "legal_description")
			if desc != "" && len(desc) < minLegalDescriptionLen {
				issues = append(issues, "Legal description appears incomplete")
			}
		}
	}

	result := types.CheckResult{
		Name:    "Format Validation",
		Kind:    types.CheckKindFormat,
		Status:  types.CheckPass,
		Message: "All formats are valid",
	}
	if len(issues) > 0 {
		result.Status = types.CheckWarning
		result.Severity = types.SeverityLow
		result.Issues = issues
		result.Message = strings.Join(issues, "; ")
	}
	return result
}

// validPhone accepts 10-11 digits after stripping common separators.
func validPhone(phone string) bool {
	return phoneDigits.MatchString(phoneSeparators.ReplaceAllString(phone, ""))
}

// validSSN accepts exactly 9 digits after stripping hyphens.
func validSSN(ssn string) bool {
	return ssnDigits.MatchString(strings.ReplaceAll(ssn, "-", ""))
}
