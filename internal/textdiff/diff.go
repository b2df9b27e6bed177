package textdiff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// lineDiff computes a line-level diff between two texts and returns the raw
// deleted and added lines in document order, trimmed of surrounding
// whitespace. Replaced ranges contribute to both lists; modification pairing
// happens later.
func lineDiff(oldText, newText string) (deletions, additions []string) {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	deletions = []string{}
	additions = []string{}

	m := difflib.NewMatcher(oldLines, newLines)
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'd', 'r':
			for _, line := range oldLines[op.I1:op.I2] {
				deletions = append(deletions, strings.TrimSpace(line))
			}
		}
		switch op.Tag {
		case 'i', 'r':
			for _, line := range newLines[op.J1:op.J2] {
				additions = append(additions, strings.TrimSpace(line))
			}
		}
	}
	return deletions, additions
}

// splitLines splits text into lines without trailing newline markers.
// An empty string yields no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// lineCount returns the number of lines in text, 0 for empty input.
func lineCount(text string) int {
	return len(splitLines(text))
}
