package compliance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// Earnest money outside this share of the purchase price draws a warning.
const (
	earnestMoneyMinPct = 0.5
	earnestMoneyMaxPct = 10.0
)

// parseAmount parses a currency-like value: numbers pass through, strings
// are stripped of "$" and "," first. Unparsable values return ok=false.
func parseAmount(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(v))
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// amountOf resolves and parses an amount field. A zero amount reports
// ok=false: extraction emits zero for fields it could not read, and the
// missing-field check already covers true absence.
func amountOf(fields map[string]any, path string) (float64, bool) {
	value, ok := FieldPath(path).Resolve(fields)
	if !ok {
		return 0, false
	}
	amount, ok := parseAmount(value)
	if !ok || amount == 0 {
		return 0, false
	}
	return amount, true
}

// firstAmount returns the first resolvable amount among the given paths.
func firstAmount(fields map[string]any, paths ...string) (float64, bool) {
	for _, path := range paths {
		if amount, ok := amountOf(fields, path); ok {
			return amount, true
		}
	}
	return 0, false
}

// checkAmounts runs the named amount checks. Amount problems always require
// human judgment, so the check never fails outright: any issue yields a
// WARNING at MEDIUM severity.
func checkAmounts(checks []string, fields map[string]any) types.CheckResult {
	var issues []string

	for _, check := range checks {
		switch check {
		case "loan_amount_less_than_price":
			loan, okL := amountOf(fields, "loan_amount")
			price, okP := firstAmount(fields, "sale_price", "purchase_price")
			if okL && okP && loan > price {
				issues = append(issues, fmt.Sprintf("Loan amount ($%.2f) exceeds sale price ($%.2f)", loan, price))
			}

		case "fees_reasonable":
			total := totalFees(fields)
			price, ok := amountOf(fields, "sale_price")
			if ok && total > price*0.1 {
				issues = append(issues, fmt.Sprintf("Total fees ($%.2f) exceed 10%% of sale price", total))
			}

		case "earnest_money_reasonable":
			earnest, okE := amountOf(fields, "earnest_money")
			price, okP := amountOf(fields, "purchase_price")
			if okE && okP {
				pct := earnest / price * 100
				if pct < earnestMoneyMinPct {
					issues = append(issues, fmt.Sprintf("Earnest money (%.1f%%) is very low (< 0.5%%)", pct))
				} else if pct > earnestMoneyMaxPct {
					issues = append(issues, fmt.Sprintf("Earnest money (%.1f%%) is very high (> 10%%)", pct))
				}
			}

		case "purchase_price_positive":
			if price, ok := amountOf(fields, "purchase_price"); ok && price <= 0 {
				issues = append(issues, "Purchase price must be positive")
			}

		case "loan_amount_positive":
			if loan, ok := amountOf(fields, "loan_amount"); ok && loan <= 0 {
				issues = append(issues, "Loan amount must be positive")
			}

		case "income_sufficient":
			income, okI := amountOf(fields, "income")
			loan, okL := amountOf(fields, "loan_amount")
			if okI && okL {
				// Rough DTI estimate: 0.5% of principal as the monthly
				// payment against 43% of monthly income.
				estimatedPayment := loan * 0.005
				monthlyIncome := income
				if income > 100000 { // treat large figures as annual
					monthlyIncome = income / 12
				}
				if estimatedPayment > monthlyIncome*0.43 {
					issues = append(issues, "Debt-to-income ratio may be too high (> 43%)")
				}
			}

		case "coverage_amount_reasonable":
			coverage, okC := amountOf(fields, "coverage_amount")
			value, okV := firstAmount(fields, "property_value", "purchase_price")
			if okC && okV && coverage < value {
				issues = append(issues, fmt.Sprintf("Coverage amount ($%.2f) is less than property value ($%.2f)", coverage, value))
			}
		}
	}

	result := types.CheckResult{
		Name:    "Amount Validation",
		Kind:    types.CheckKindAmount,
		Status:  types.CheckPass,
		Message: "All amounts are reasonable",
	}
	if len(issues) > 0 {
		result.Status = types.CheckWarning
		result.Severity = types.SeverityMedium
		result.Issues = issues
		result.Message = strings.Join(issues, "; ")
	}
	return result
}

// totalFees sums the amount of each entry in fields["fees"].
func totalFees(fields map[string]any) float64 {
	list, ok := fields["fees"].([]any)
	if !ok {
		return 0
	}
	var total float64
	for _, item := range list {
		fee, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if amount, ok := parseAmount(fee["amount"]); ok {
			total += amount
		}
	}
	return total
}
