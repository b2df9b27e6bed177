package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doc-intelligence/internal/types"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestParseDate_Layouts(t *testing.T) {
	for _, input := range []string{
		"2024-01-15",
		"01/15/2024",
		"2024-01-15T10:30:00",
		"2024-01-15 10:30:00",
	} {
		parsed, ok := parseDate(input)
		require.True(t, ok, "input %q should parse", input)
		assert.Equal(t, 15, parsed.Day(), "input %q", input)
	}
}

func TestParseDate_AmbiguousSlashDateIsUSFirst(t *testing.T) {
	parsed, ok := parseDate("03/04/2024")
	require.True(t, ok)
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 4, parsed.Day())
}

func TestParseDate_DayFirstFallback(t *testing.T) {
	// 25 is not a valid month, so the day-first layout picks it up.
	parsed, ok := parseDate("25/12/2024")
	require.True(t, ok)
	assert.Equal(t, time.December, parsed.Month())
	assert.Equal(t, 25, parsed.Day())
}

func TestParseDate_Unparsable(t *testing.T) {
	_, ok := parseDate("next Tuesday")
	assert.False(t, ok)
	_, ok = parseDate(42)
	assert.False(t, ok)
}

func TestParseDate_TimeValuePassesThrough(t *testing.T) {
	parsed, ok := parseDate(testNow)
	require.True(t, ok)
	assert.Equal(t, testNow, parsed)
}

func TestCheckDates_ClosingDateInPast(t *testing.T) {
	result := checkDates(
		[]string{"closing_date_in_future"},
		map[string]any{"closing_date": "2023-11-01"},
		testNow,
	)

	assert.Equal(t, types.CheckWarning, result.Status)
	assert.Equal(t, types.SeverityMedium, result.Severity)
	assert.Equal(t, []string{"Closing date is in the past"}, result.Issues)
}

func TestCheckDates_ContractDateBeforeClosing(t *testing.T) {
	result := checkDates(
		[]string{"contract_date_before_closing"},
		map[string]any{
			"contract_date": "2024-02-15",
			"closing_date":  "2024-02-01",
		},
		testNow,
	)

	assert.Equal(t, []string{"Contract date must be before closing date"}, result.Issues)
}

func TestCheckDates_ClosingDateReasonable(t *testing.T) {
	result := checkDates(
		[]string{"closing_date_reasonable"},
		map[string]any{"closing_date": "2024-02-15"},
		testNow,
	)
	assert.Equal(t, types.CheckPass, result.Status)

	result = checkDates(
		[]string{"closing_date_reasonable"},
		map[string]any{"closing_date": "2024-09-01"},
		testNow,
	)
	assert.Equal(t, []string{"Closing date is more than 6 months away"}, result.Issues)
}

func TestCheckDates_InspectionPeriod(t *testing.T) {
	result := checkDates(
		[]string{"inspection_period_valid"},
		map[string]any{
			"contract_date":       "2024-01-01",
			"inspection_deadline": "2024-02-20",
		},
		testNow,
	)
	assert.Equal(t, []string{"Inspection period is unusually long (> 30 days)"}, result.Issues)

	result = checkDates(
		[]string{"inspection_period_valid"},
		map[string]any{
			"contract_date":       "2024-01-01",
			"inspection_deadline": "2024-01-01",
		},
		testNow,
	)
	assert.Equal(t, []string{"Inspection period is too short (< 1 day)"}, result.Issues)
}

func TestCheckDates_ApplicationAndExecutionDates(t *testing.T) {
	result := checkDates(
		[]string{"application_date_valid"},
		map[string]any{"application_date": "2024-06-01"},
		testNow,
	)
	assert.Equal(t, []string{"Application date is in the future"}, result.Issues)

	result = checkDates(
		[]string{"execution_date_valid"},
		map[string]any{"execution_date": "2023-12-15"},
		testNow,
	)
	assert.Equal(t, types.CheckPass, result.Status)
}

func TestCheckDates_EffectiveDateWindow(t *testing.T) {
	result := checkDates(
		[]string{"effective_date_valid"},
		map[string]any{"effective_date": "2024-02-01"},
		testNow,
	)
	assert.Equal(t, types.CheckPass, result.Status)

	result = checkDates(
		[]string{"effective_date_valid"},
		map[string]any{"effective_date": "2024-06-01"},
		testNow,
	)
	assert.Equal(t, []string{"Effective date is more than 90 days from today"}, result.Issues)
}

func TestCheckDates_MultipleIssuesFail(t *testing.T) {
	result := checkDates(
		[]string{"closing_date_in_future", "contract_date_before_closing"},
		map[string]any{
			"closing_date":  "2023-11-01",
			"contract_date": "2023-12-01",
		},
		testNow,
	)

	assert.Equal(t, types.CheckFail, result.Status)
	assert.Equal(t, types.SeverityHigh, result.Severity)
	assert.Len(t, result.Issues, 2)
}

func TestCheckDates_MissingFieldsNotApplicable(t *testing.T) {
	result := checkDates(
		[]string{"closing_date_in_future", "inspection_period_valid"},
		map[string]any{},
		testNow,
	)

	assert.Equal(t, types.CheckPass, result.Status)
	assert.Equal(t, "All dates are consistent", result.Message)
}
