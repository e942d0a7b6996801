package emit

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonAlnumSplit   = regexp.MustCompile(`[^A-Za-z0-9]+`)
	nonAlnumRun     = regexp.MustCompile(`[^A-Z0-9]+`)
	tsIdentifier    = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	gqlName         = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)
	gqlInvalidRun   = regexp.MustCompile(`[^_0-9A-Za-z]+`)
	leadingDigitRun = regexp.MustCompile(`^[0-9]`)
)

// typeName derives a type name from a raw field name: non-alphanumeric
// separators split words, each word is capitalized, and a leading digit gets
// a "T" prefix.
func typeName(field string) string {
	var b strings.Builder
	for _, part := range nonAlnumSplit.Split(field, -1) {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	name := b.String()
	if name == "" {
		return "Type"
	}
	if leadingDigitRun.MatchString(name) {
		name = "T" + name
	}
	return name
}

// singularize trims a plural suffix for array-derived type names: "orders"
// becomes "order", "entries" becomes "entry". Words ending in a double "s"
// are left alone. The heuristic is naive on irregular plurals.
func singularize(s string) string {
	switch {
	case len(s) > 3 && strings.HasSuffix(s, "ies"):
		return s[:len(s)-3] + "y"
	case len(s) > 1 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return s[:len(s)-1]
	}
	return s
}

// enumMemberName upper-cases a string value and replaces non-alphanumeric
// runs with underscores, yielding an enumeration member name.
func enumMemberName(v string) string {
	name := strings.Trim(nonAlnumRun.ReplaceAllString(strings.ToUpper(v), "_"), "_")
	if name == "" {
		return "EMPTY"
	}
	if leadingDigitRun.MatchString(name) {
		name = "_" + name
	}
	return name
}

// propertyKey renders a field name as a TypeScript property key, quoting it
// when it is not a valid identifier.
func propertyKey(key string) string {
	if tsIdentifier.MatchString(key) {
		return key
	}
	return strconv.Quote(key)
}

// gqlFieldName maps a raw field name onto the SDL name grammar
// /[_A-Za-z][_0-9A-Za-z]*/. SDL has no quoted-key escape hatch, so invalid
// runs collapse to underscores and a leading digit gets one prefixed.
func gqlFieldName(key string) string {
	if gqlName.MatchString(key) {
		return key
	}
	name := strings.Trim(gqlInvalidRun.ReplaceAllString(key, "_"), "_")
	if name == "" {
		return "field"
	}
	if leadingDigitRun.MatchString(name) {
		name = "_" + name
	}
	return name
}
