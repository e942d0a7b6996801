package parse

import "regexp"

// Repair rules. The sequence is fixed and order-dependent: each rule assumes
// the previous ones already ran. The transforms are heuristic and can misfire
// on legitimate strings containing embedded quotes or colons; they are a
// best-effort convenience, not a grammar-correct repair.
var (
	// A comma directly before a closing brace or bracket.
	repairTrailingComma = regexp.MustCompile(`,\s*([}\]])`)
	// A single-quoted key or string value.
	repairSingleQuoted = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'`)
	// A bare identifier used as an object key.
	repairBareKey = regexp.MustCompile(`([{,]\s*)([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)
	// Two quoted strings, or two objects, separated only by a newline.
	repairMissingCommaString = regexp.MustCompile(`(")[ \t]*\n([ \t]*")`)
	repairMissingCommaObject = regexp.MustCompile(`(\})[ \t]*\n([ \t]*\{)`)
)

// Repair applies a fixed sequence of textual fixes for common malformed-JSON
// idioms: trailing commas, single-quoted keys and values, bare identifier
// keys, and missing commas between adjacent tokens split by a newline. The
// result is not guaranteed to parse; callers surface both the original and
// the post-repair parse error when it does not. Repair is idempotent.
func Repair(text string) string {
	out := repairTrailingComma.ReplaceAllString(text, "$1")
	out = repairSingleQuoted.ReplaceAllString(out, `"$1"`)
	out = repairBareKey.ReplaceAllString(out, `$1"$2":`)
	out = repairMissingCommaString.ReplaceAllString(out, "$1,\n$2")
	out = repairMissingCommaObject.ReplaceAllString(out, "$1,\n$2")
	return out
}
