package parse

import (
	"fmt"
	"strings"

	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// parseJSONLines parses each non-blank line as a standalone JSON value and
// returns the sequence of per-line values. Line one is the primary sample
// downstream; the remaining lines are the extra samples. Individual lines go
// through the same repair fallback as whole JSON documents.
func parseJSONLines(text string) (*value.Value, error) {
	arr := &value.Value{Kind: value.Array}

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		v, rawErr := value.Decode([]byte(trimmed))
		if rawErr != nil {
			repaired, repairErr := value.Decode([]byte(Repair(trimmed)))
			if repairErr != nil {
				return nil, &types.ParseError{
					Format: types.FormatJSONLines,
					Msg:    fmt.Sprintf("line %d: %v (after repair: %v)", i+1, rawErr, repairErr),
				}
			}
			v = repaired
		}
		arr.Items = append(arr.Items, v)
	}

	if len(arr.Items) == 0 {
		return nil, &types.ParseError{Format: types.FormatJSONLines, Msg: "no JSON values found"}
	}
	return arr, nil
}
