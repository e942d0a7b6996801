package analyze

import (
	"regexp"

	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// Pattern identifies a semantic category of string values.
type Pattern string

// Detected patterns.
const (
	PatternNone  Pattern = ""
	PatternEmail Pattern = "email"
	PatternUUID  Pattern = "uuid"
	PatternDate  Pattern = "date"
	PatternURL   Pattern = "url"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// RFC 4122, versions 1-5.
	uuidRegex = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?$`)
	urlRegex  = regexp.MustCompile(`^https?://\S+$`)
)

// patternRules run in fixed priority order; the first rule that matches
// every value wins.
var patternRules = []struct {
	pattern Pattern
	re      *regexp.Regexp
}{
	{PatternEmail, emailRegex},
	{PatternUUID, uuidRegex},
	{PatternDate, dateRegex},
	{PatternURL, urlRegex},
}

// DetectPattern classifies a field's non-null values when every one is a
// string and all of them match the same rule. Heterogeneous value sets are
// skipped entirely.
func DetectPattern(values []*value.Value) Pattern {
	if len(values) == 0 {
		return PatternNone
	}
	for _, v := range values {
		if v.Kind != value.String {
			return PatternNone
		}
	}

	for _, rule := range patternRules {
		if allMatch(values, rule.re) {
			return rule.pattern
		}
	}
	return PatternNone
}

func allMatch(values []*value.Value, re *regexp.Regexp) bool {
	for _, v := range values {
		if !re.MatchString(v.Str) {
			return false
		}
	}
	return true
}
