// Package detect classifies raw sample text into one of the five supported
// input formats using ordered heuristics.
package detect

import (
	"regexp"
	"strings"

	"github.com/typeforge/typeforge-mcp/pkg/types"
)

var (
	// A line that opens with an unquoted identifier key, e.g. "name: x".
	yamlLeadKeyRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*\s*:`)
	// A bare identifier used as an object key, e.g. "{id: 1}".
	json5BareKeyRegex = regexp.MustCompile(`[{,]\s*[A-Za-z_$][A-Za-z0-9_$]*\s*:`)
	// A comma immediately before a closing bracket.
	trailingCommaRegex = regexp.MustCompile(`,\s*[}\]]`)
)

// Detect returns the most likely input format for text. It is total: when no
// heuristic fires the result is FormatJSON. Detection is advisory; callers
// may always supply an explicit format to bypass it.
//
// The rules run in fixed order and the first match wins: jsonlines, csv,
// yaml, json5, then the json default.
func Detect(text string) types.InputFormat {
	switch {
	case isJSONLines(text):
		return types.FormatJSONLines
	case isCSV(text):
		return types.FormatCSV
	case isYAML(text):
		return types.FormatYAML
	case isJSON5(text):
		return types.FormatJSON5
	}
	return types.FormatJSON
}

// isJSONLines fires when the text spans multiple lines and every non-blank
// line, after trimming, is a brace-delimited object.
func isJSONLines(text string) bool {
	if !strings.Contains(text, "\n") {
		return false
	}
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return false
	}
	for _, ln := range lines {
		if !strings.HasPrefix(ln, "{") || !strings.HasSuffix(ln, "}") {
			return false
		}
	}
	return true
}

// isCSV fires when the first two non-blank lines have comma counts within
// one of each other and the first line has at least one comma.
func isCSV(text string) bool {
	if !strings.Contains(text, ",") || !strings.Contains(text, "\n") {
		return false
	}
	lines := nonBlankLines(text)
	if len(lines) < 2 {
		return false
	}
	first := strings.Count(lines[0], ",")
	second := strings.Count(lines[1], ",")
	if first == 0 {
		return false
	}
	diff := first - second
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

// isYAML fires when the text contains a colon and shows list, indentation,
// leading-key, or document-separator structure.
func isYAML(text string) bool {
	if !strings.Contains(text, ":") {
		return false
	}
	return strings.Contains(text, "\n- ") ||
		strings.Contains(text, "\n  ") ||
		yamlLeadKeyRegex.MatchString(strings.TrimSpace(text)) ||
		strings.Contains(text, "---")
}

// isJSON5 fires on comments, trailing commas, or unquoted identifier keys.
func isJSON5(text string) bool {
	if strings.Contains(text, "//") || strings.Contains(text, "/*") {
		return true
	}
	if trailingCommaRegex.MatchString(text) {
		return true
	}
	return json5BareKeyRegex.MatchString(text)
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(ln)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
