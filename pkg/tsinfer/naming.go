package tsinfer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	wordSplit  = regexp.MustCompile(`[^A-Za-z0-9]+`)
	identRe    = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	leadsDigit = regexp.MustCompile(`^[0-9]`)
)

// derivedName turns a field name into a type name: separator-split words are
// capitalized and joined, a leading digit gets a "T" prefix.
func derivedName(field string) string {
	var b strings.Builder
	for _, part := range wordSplit.Split(field, -1) {
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
	if leadsDigit.MatchString(name) {
		name = "T" + name
	}
	return name
}

// singular trims a plural suffix so an "orders" array yields an "Order"
// element type. Naive on irregular plurals.
func singular(s string) string {
	switch {
	case len(s) > 3 && strings.HasSuffix(s, "ies"):
		return s[:len(s)-3] + "y"
	case len(s) > 1 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return s[:len(s)-1]
	}
	return s
}

// fieldKey quotes a property name that is not a valid identifier.
func fieldKey(key string) string {
	if identRe.MatchString(key) {
		return key
	}
	return strconv.Quote(key)
}
