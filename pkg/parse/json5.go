package parse

import (
	"fmt"
	"strings"

	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// parseJSON5 handles the pragmatic JSON5 subset: comments, trailing commas,
// unquoted identifier keys, and single-quoted strings. Comments are stripped
// first, then the repair pipeline normalizes the rest down to standard JSON.
func parseJSON5(text string) (*value.Value, error) {
	repaired := Repair(stripComments(text))
	v, err := value.Decode([]byte(repaired))
	if err != nil {
		return nil, &types.ParseError{
			Format: types.FormatJSON5,
			Msg:    fmt.Sprintf("after comment stripping and repair: %v", err),
		}
	}
	return v, nil
}

// stripComments removes // line comments and /* */ block comments occurring
// outside string literals. Newlines inside removed comments are kept so the
// repair pass still sees the original line structure.
func stripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	const (
		stateCode = iota
		stateString
		stateLineComment
		stateBlockComment
	)
	state := stateCode
	var quote byte
	escaped := false

	for i := 0; i < len(text); i++ {
		ch := text[i]

		switch state {
		case stateCode:
			switch {
			case ch == '"' || ch == '\'':
				state = stateString
				quote = ch
				b.WriteByte(ch)
			case ch == '/' && i+1 < len(text) && text[i+1] == '/':
				state = stateLineComment
				i++
			case ch == '/' && i+1 < len(text) && text[i+1] == '*':
				state = stateBlockComment
				i++
			default:
				b.WriteByte(ch)
			}

		case stateString:
			b.WriteByte(ch)
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == quote:
				state = stateCode
			}

		case stateLineComment:
			if ch == '\n' {
				state = stateCode
				b.WriteByte(ch)
			}

		case stateBlockComment:
			if ch == '\n' {
				b.WriteByte(ch)
			}
			if ch == '*' && i+1 < len(text) && text[i+1] == '/' {
				state = stateCode
				i++
			}
		}
	}
	return b.String()
}
