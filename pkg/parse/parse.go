// Package parse turns raw text in any supported input format into a
// normalized value tree. The JSON path includes a best-effort auto-repair
// pass for common malformed-JSON idioms, and the same pass is retried as a
// fallback when another format's parser fails.
package parse

import (
	"fmt"

	"github.com/typeforge/typeforge-mcp/pkg/detect"
	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// ParsedInput is the immutable result of parsing one input text.
type ParsedInput struct {
	Data         *value.Value
	Format       types.InputFormat
	OriginalText string
}

// ParseAuto detects the input format and parses.
func ParseAuto(text string) (*ParsedInput, error) {
	return Parse(text, detect.Detect(text))
}

// Parse parses text as the given format. An empty format auto-detects.
func Parse(text string, format types.InputFormat) (*ParsedInput, error) {
	if format == "" {
		format = detect.Detect(text)
	}

	var (
		data *value.Value
		err  error
	)
	switch format {
	case types.FormatJSON:
		data, err = parseJSON(text)
	case types.FormatJSON5:
		data, err = parseJSON5(text)
	case types.FormatYAML:
		data, err = parseYAML(text)
	case types.FormatCSV:
		data, err = parseCSV(text)
	case types.FormatJSONLines:
		data, err = parseJSONLines(text)
	default:
		return nil, &types.ParseError{Format: format, Msg: "unsupported input format"}
	}
	if err != nil {
		return nil, err
	}

	return &ParsedInput{Data: data, Format: format, OriginalText: text}, nil
}

// parseJSON parses standard JSON, retrying once on repaired text. When both
// attempts fail the error carries both causes.
func parseJSON(text string) (*value.Value, error) {
	v, rawErr := value.Decode([]byte(text))
	if rawErr == nil {
		return v, nil
	}

	v, repairErr := value.Decode([]byte(Repair(text)))
	if repairErr == nil {
		return v, nil
	}
	return nil, &types.ParseError{
		Format: types.FormatJSON,
		Msg:    fmt.Sprintf("%v (after repair: %v)", rawErr, repairErr),
	}
}

// repairFallback retries a failed non-JSON parse as repaired JSON. The
// original format's error is preserved alongside the fallback's.
func repairFallback(text string, format types.InputFormat, origErr error) (*value.Value, error) {
	v, err := value.Decode([]byte(Repair(text)))
	if err == nil {
		return v, nil
	}
	return nil, &types.ParseError{
		Format: format,
		Msg:    fmt.Sprintf("%v (repaired-JSON fallback: %v)", origErr, err),
	}
}
