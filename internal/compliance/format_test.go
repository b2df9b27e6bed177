package compliance

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doc-intelligence/internal/types"
)

func TestCheckFormats_ValidInputs(t *testing.T) {
	result := checkFormats(
		[]string{"email_format", "phone_format", "ssn_format"},
		map[string]any{
			"email": "john.doe@example.com",
			"phone": "(555) 123-4567",
			"ssn":   "123-45-6789",
		},
		validator.New(),
	)

	assert.Equal(t, types.CheckPass, result.Status)
	assert.Equal(t, "All formats are valid", result.Message)
}

func TestCheckFormats_InvalidEmail(t *testing.T) {
	result := checkFormats(
		[]string{"email_format"},
		map[string]any{"email": "not-an-email"},
		validator.New(),
	)

	assert.Equal(t, types.CheckWarning, result.Status)
	assert.Equal(t, types.SeverityLow, result.Severity)
	assert.Equal(t, []string{"Invalid email format: not-an-email"}, result.Issues)
}

func TestCheckFormats_ApplicantFallbacks(t *testing.T) {
	result := checkFormats(
		[]string{"email_format", "phone_format"},
		map[string]any{
			"applicant_email": "bad@@example",
			"applicant_phone": "12345",
		},
		validator.New(),
	)

	assert.Len(t, result.Issues, 2)
}

func TestCheckFormats_InvalidSSN(t *testing.T) {
	result := checkFormats(
		[]string{"ssn_format"},
		map[string]any{"ssn": "12-34-5678"},
		validator.New(),
	)
	assert.Equal(t, []string{"Invalid SSN format"}, result.Issues)
}

func TestCheckFormats_ShortLegalDescription(t *testing.T) {
	result := checkFormats(
		[]string{"legal_description_format"},
		map[string]any{"legal_description": "Lot 5"},
		validator.New(),
	)
	assert.Equal(t, []string{"Legal description appears incomplete"}, result.Issues)

	result = checkFormats(
		[]string{"legal_description_format"},
		map[string]any{"legal_description": "Lot 5, Block 2 of Sunrise Estates, Plat Book 12, Page 34"},
		validator.New(),
	)
	assert.Equal(t, types.CheckPass, result.Status)
}

func TestCheckFormats_AbsentFieldsSkipped(t *testing.T) {
	result := checkFormats(
		[]string{"email_format", "phone_format", "ssn_format", "legal_description_format"},
		map[string]any{},
		validator.New(),
	)
	assert.Equal(t, types.CheckPass, result.Status)
}

func TestValidPhone(t *testing.T) {
	require.True(t, validPhone("555-123-4567"))
	require.True(t, validPhone("15551234567"))
	assert.False(t, validPhone("555-1234"))
	assert.False(t, validPhone("phone me"))
}
