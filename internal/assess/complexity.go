package assess

import (
	"os"
	"regexp"
	"strings"
)

// funcDefPattern locates Python function-definition sites lexically.
var funcDefPattern = regexp.MustCompile(`def\s+(\w+)\s*\(`)

// complexityKeywords are the decision-point markers counted by the
// heuristic. Counting is plain substring counting, so "elif" also
// contributes an "if" hit; that is part of the reference behavior.
var complexityKeywords = []string{"if", "for", "while", "and", "or", "elif", "except"}

// ScanComplexity flags functions in a Python source file whose heuristic
// complexity score exceeds ComplexityThreshold. relPath is recorded on
// each finding.
//
// Known limitation: this is lexical scanning, not control-flow analysis.
// A function's scoring window runs from its own "def" to the next "def"
// occurrence (or end of file), so nested or trailing definitions can leak
// into a neighbor's score. The window overrun is preserved deliberately;
// it reproduces the reference scanner rather than true cyclomatic
// complexity.
func ScanComplexity(filePath, relPath string) []ComplexFunction {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	content := string(data)

	var flagged []ComplexFunction
	for _, loc := range funcDefPattern.FindAllStringSubmatchIndex(content, -1) {
		start := loc[0]
		name := content[loc[2]:loc[3]]

		// Window: from this def to the next "def" occurrence, searching
		// past the current keyword so the window is never empty.
		window := content[start:]
		if next := strings.Index(window[len("def"):], "def"); next >= 0 {
			window = window[:len("def")+next]
		}

		score := complexityScore(window)
		if score > ComplexityThreshold {
			flagged = append(flagged, ComplexFunction{
				Path:  relPath,
				Name:  name,
				Score: score,
			})
		}
	}
	return flagged
}

// complexityScore sums non-overlapping occurrences of each decision
// keyword in the window.
func complexityScore(window string) int {
	score := 0
	for _, kw := range complexityKeywords {
		score += strings.Count(window, kw)
	}
	return score
}
