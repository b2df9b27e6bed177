package textdiff

import (
	"math"
	"unicode/utf8"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// Detector compares two text versions of a document. The zero value is not
// usable; construct with NewDetector.
type Detector struct {
	pairer Pairer
}

// NewDetector returns a Detector using the default greedy modification pairer.
func NewDetector() *Detector {
	return &Detector{pairer: GreedyPairer{}}
}

// NewDetectorWithPairer returns a Detector with a custom pairing strategy.
func NewDetectorWithPairer(p Pairer) *Detector {
	return &Detector{pairer: p}
}

// Detect compares oldText and newText and returns the full change analysis.
// Empty strings are valid and mean "no content". Inputs that are not valid
// UTF-8 are rejected with a *DecodingError.
func (d *Detector) Detect(oldText, newText string) (*types.TextChangeSet, error) {
	if !utf8.ValidString(oldText) {
		return nil, &DecodingError{Message: "old text is not valid UTF-8"}
	}
	if !utf8.ValidString(newText) {
		return nil, &DecodingError{Message: "new text is not valid UTF-8"}
	}

	rawDeletions, rawAdditions := lineDiff(oldText, newText)
	mods, deletions, additions := d.pairer.Pair(rawDeletions, rawAdditions)

	totalLines := lineCount(newText)
	if totalLines < 1 {
		totalLines = 1
	}
	changed := len(additions) + len(deletions) + len(mods)
	changePct := round2(float64(changed) / float64(totalLines) * 100)

	return &types.TextChangeSet{
		Additions:        additions,
		Deletions:        deletions,
		Modifications:    mods,
		ChangePercentage: changePct,
		Significance:     classifySignificance(additions, deletions, mods),
		ChangesSummary:   generateSummary(additions, deletions, mods),
		TextDiff:         formatDiff(additions, deletions, mods),
		CriticalChanges:  identifyCriticalChanges(additions, deletions, mods),
	}, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
