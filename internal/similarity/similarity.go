// Package similarity provides pure textual similarity scoring between strings.
package similarity

import (
	"math"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns a similarity score in [0, 1] for two strings, where 1.0
// means identical. It is the character-level SequenceMatcher ratio:
// 2*M / (len(a)+len(b)) with M the total size of matched blocks.
//
// The function is stateless; each call builds a fresh matcher so there is no
// cross-call cache to invalidate.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

// splitRunes splits s into one string per rune so the matcher compares
// characters, not lines.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Round3 rounds a ratio to three decimal places for reporting.
func Round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
