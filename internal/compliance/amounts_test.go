package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doc-intelligence/internal/types"
)

func TestParseAmount(t *testing.T) {
	amount, ok := parseAmount("$450,000.00")
	require.True(t, ok)
	assert.Equal(t, 450000.0, amount)

	amount, ok = parseAmount(5000)
	require.True(t, ok)
	assert.Equal(t, 5000.0, amount)

	amount, ok = parseAmount(-500.0)
	require.True(t, ok)
	assert.Equal(t, -500.0, amount)

	_, ok = parseAmount("TBD")
	assert.False(t, ok)

	_, ok = parseAmount(nil)
	assert.False(t, ok)
}

func TestAmountOf_ZeroMeansUnextracted(t *testing.T) {
	_, ok := amountOf(map[string]any{"loan_amount": 0.0}, "loan_amount")
	assert.False(t, ok)

	amount, ok := amountOf(map[string]any{"loan_amount": "$360,000"}, "loan_amount")
	require.True(t, ok)
	assert.Equal(t, 360000.0, amount)
}

func TestCheckAmounts_LoanExceedsPrice(t *testing.T) {
	result := checkAmounts(
		[]string{"loan_amount_less_than_price"},
		map[string]any{
			"loan_amount": 500000.0,
			"sale_price":  450000.0,
		},
	)

	assert.Equal(t, types.CheckWarning, result.Status)
	assert.Equal(t, types.SeverityMedium, result.Severity)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "exceeds sale price")
}

func TestCheckAmounts_EarnestMoneyRange(t *testing.T) {
	result := checkAmounts(
		[]string{"earnest_money_reasonable"},
		map[string]any{
			"earnest_money":  1000.0, // 0.22%
			"purchase_price": 450000.0,
		},
	)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "very low (< 0.5%)")

	result = checkAmounts(
		[]string{"earnest_money_reasonable"},
		map[string]any{
			"earnest_money":  60000.0, // 13.3%
			"purchase_price": 450000.0,
		},
	)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "very high (> 10%)")

	result = checkAmounts(
		[]string{"earnest_money_reasonable"},
		map[string]any{
			"earnest_money":  5000.0, // 1.1%
			"purchase_price": 450000.0,
		},
	)
	assert.Equal(t, types.CheckPass, result.Status)
}

func TestCheckAmounts_NegativeAmounts(t *testing.T) {
	result := checkAmounts(
		[]string{"loan_amount_positive"},
		map[string]any{"loan_amount": -500.0},
	)
	assert.Equal(t, []string{"Loan amount must be positive"}, result.Issues)

	result = checkAmounts(
		[]string{"purchase_price_positive"},
		map[string]any{"purchase_price": -1.0},
	)
	assert.Equal(t, []string{"Purchase price must be positive"}, result.Issues)
}

func TestCheckAmounts_IncomeSufficient(t *testing.T) {
	// Annual income 120k, loan 1.2M: estimated payment 6000 against 4300
	// allowed from 10k monthly income.
	result := checkAmounts(
		[]string{"income_sufficient"},
		map[string]any{
			"income":      120000.0,
			"loan_amount": 1200000.0,
		},
	)
	assert.Equal(t, []string{"Debt-to-income ratio may be too high (> 43%)"}, result.Issues)

	result = checkAmounts(
		[]string{"income_sufficient"},
		map[string]any{
			"income":      120000.0,
			"loan_amount": 360000.0,
		},
	)
	assert.Equal(t, types.CheckPass, result.Status)
}

func TestCheckAmounts_FeesReasonable(t *testing.T) {
	result := checkAmounts(
		[]string{"fees_reasonable"},
		map[string]any{
			"sale_price": 450000.0,
			"fees": []any{
				map[string]any{"name": "title", "amount": "$30,000"},
				map[string]any{"name": "escrow", "amount": 20000.0},
			},
		},
	)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "exceed 10% of sale price")
}

func TestCheckAmounts_CoverageBelowValue(t *testing.T) {
	result := checkAmounts(
		[]string{"coverage_amount_reasonable"},
		map[string]any{
			"coverage_amount": 300000.0,
			"property_value":  450000.0,
		},
	)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "less than property value")
}

func TestCheckAmounts_MissingFieldsNotApplicable(t *testing.T) {
	result := checkAmounts(
		[]string{"loan_amount_less_than_price", "earnest_money_reasonable"},
		map[string]any{},
	)
	assert.Equal(t, types.CheckPass, result.Status)
	assert.Equal(t, "All amounts are reasonable", result.Message)
}
