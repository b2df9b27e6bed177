package rules

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed rule_catalog.schema.json
var catalogSchema string

// CatalogError represents a rule catalog that could not be read or parsed.
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// validateCatalogJSON checks raw catalog JSON against the embedded schema.
func validateCatalogJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &CatalogError{Message: "catalog schema validation failed to run", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("catalog does not match schema:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
	}
	return &CatalogError{Message: strings.TrimSuffix(sb.String(), ";")}
}
