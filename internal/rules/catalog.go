// Package rules holds the static compliance rule catalog: the mapping from
// document category to the requirements a compliant document must satisfy.
package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry describes the compliance requirements for one document category.
// Date/amount/format checks reference named check identifiers implemented by
// the compliance engine.
type Entry struct {
	RequiredFields     []string `json:"required_fields,omitempty"`
	RequiredSignatures []string `json:"required_signatures,omitempty"`
	RequiredClauses    []string `json:"required_clauses,omitempty"`
	DateChecks         []string `json:"date_checks,omitempty"`
	AmountChecks       []string `json:"amount_checks,omitempty"`
	FormatChecks       []string `json:"format_checks,omitempty"`
}

// Catalog is the category-indexed rule table. It is loaded once at startup
// and never mutated afterwards, so it is safe for concurrent readers.
type Catalog struct {
	entries map[string]Entry
}

// Lookup returns the entry for a category. Matching is case-insensitive.
// Unknown categories return a zero entry and ok=false; compliance checking
// degrades to an all-pass rule set rather than failing, and callers should
// surface the miss.
func (c *Catalog) Lookup(category string) (Entry, bool) {
	entry, ok := c.entries[strings.ToUpper(category)]
	return entry, ok
}

// Categories returns the known category names in no particular order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	return names
}

// Default returns the built-in catalog covering the five standard real
// estate document categories.
func Default() *Catalog {
	return &Catalog{entries: map[string]Entry{
		"SETTLEMENT_STATEMENT": {
			RequiredFields: []string{
				"buyer_name", "seller_name", "property_address",
				"sale_price", "closing_date", "loan_amount",
			},
			RequiredSignatures: []string{"buyer", "seller", "closing_agent"},
			DateChecks: []string{
				"closing_date_in_future",
				"contract_date_before_closing",
			},
			AmountChecks: []string{
				"loan_amount_less_than_price",
				"fees_reasonable",
			},
			FormatChecks: []string{"email_format", "phone_format"},
		},
		"PURCHASE_AGREEMENT": {
			RequiredFields: []string{
				"buyer_name", "seller_name", "property_address",
				"purchase_price", "earnest_money", "closing_date",
				"inspection_period",
			},
			RequiredSignatures: []string{"buyer", "seller"},
			RequiredClauses: []string{
				"contingencies", "inspection_period", "financing_terms",
			},
			DateChecks: []string{
				"closing_date_reasonable",
				"inspection_period_valid",
			},
			AmountChecks: []string{
				"earnest_money_reasonable",
				"purchase_price_positive",
			},
		},
		"LOAN_APPLICATION": {
			RequiredFields: []string{
				"applicant_name", "ssn", "loan_amount",
				"property_address", "employment_info", "income",
			},
			RequiredSignatures: []string{"applicant"},
			DateChecks:         []string{"application_date_valid"},
			AmountChecks: []string{
				"loan_amount_positive",
				"income_sufficient",
			},
			FormatChecks: []string{"ssn_format", "email_format", "phone_format"},
		},
		"TITLE_INSURANCE": {
			RequiredFields: []string{
				"property_address", "owner_name", "policy_number",
				"coverage_amount", "effective_date",
			},
			RequiredSignatures: []string{"insurer", "owner"},
			DateChecks:         []string{"effective_date_valid"},
			AmountChecks:       []string{"coverage_amount_reasonable"},
		},
		"DEED": {
			RequiredFields: []string{
				"grantor_name", "grantee_name", "property_description",
				"consideration_amount", "execution_date",
			},
			RequiredSignatures: []string{"grantor", "notary"},
			RequiredClauses:    []string{"legal_description"},
			DateChecks:         []string{"execution_date_valid"},
			FormatChecks:       []string{"legal_description_format"},
		},
	}}
}

// LoadFile reads a JSON catalog file, validates it against the catalog
// schema, and returns the defaults overlaid with the file's categories.
// Categories in the file replace same-named defaults wholesale; new
// categories extend the catalog without engine changes.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Message: fmt.Sprintf("failed to read catalog file %s", path), Cause: err}
	}
	return Parse(data)
}

// Parse validates and parses raw catalog JSON, overlaying it on the defaults.
func Parse(data []byte) (*Catalog, error) {
	if err := validateCatalogJSON(data); err != nil {
		return nil, err
	}

	var overlay map[string]Entry
	if err := json.Unmarshal(data, &overlay); err != nil {
		return nil, &CatalogError{Message: "failed to parse catalog JSON", Cause: err}
	}

	catalog := Default()
	for name, entry := range overlay {
		catalog.entries[strings.ToUpper(name)] = entry
	}
	return catalog, nil
}
