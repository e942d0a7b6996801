// Package query preprocesses parsed samples with jq expressions, letting a
// caller zoom into a sub-tree (or fan one document out into several samples)
// before structural analysis runs.
package query

import (
	"context"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// Select runs a jq expression over the primary sample and any extras and
// returns the produced values as a new sample set, first output first.
// Because jq operates on plain map trees, key order on this path is
// normalized to sorted order.
func Select(ctx context.Context, expr string, primary *value.Value, extras []*value.Value) (*value.Value, []*value.Value, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing jq expression %q: %w", expr, err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, nil, fmt.Errorf("compiling jq expression %q: %w", expr, err)
	}

	var outputs []*value.Value
	for _, sample := range append([]*value.Value{primary}, extras...) {
		iter := code.RunWithContext(ctx, sample.ToAny())
		for {
			out, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := out.(error); isErr {
				return nil, nil, fmt.Errorf("running jq expression %q: %w", expr, err)
			}
			outputs = append(outputs, value.FromAny(out))
		}
	}

	if len(outputs) == 0 {
		return nil, nil, fmt.Errorf("jq expression %q produced no output", expr)
	}
	return outputs[0], outputs[1:], nil
}
