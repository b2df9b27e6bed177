// Package textdiff detects and classifies changes between two text versions of a document.
package textdiff

import "fmt"

// DecodingError represents malformed input text that cannot be analyzed.
type DecodingError struct {
	Message string
	Cause   error
}

func (e *DecodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decoding error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decoding error: %s", e.Message)
}

func (e *DecodingError) Unwrap() error {
	return e.Cause
}
