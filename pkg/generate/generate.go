// Package generate sequences the full pipeline: format detection, parsing
// with auto-repair, optional jq preprocessing, multi-sample structural
// analysis, and emission into the requested output format.
package generate

import (
	"context"
	"fmt"

	"github.com/typeforge/typeforge-mcp/internal/query"
	"github.com/typeforge/typeforge-mcp/pkg/analyze"
	"github.com/typeforge/typeforge-mcp/pkg/emit"
	"github.com/typeforge/typeforge-mcp/pkg/parse"
	"github.com/typeforge/typeforge-mcp/pkg/tsinfer"
	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// DefaultTypeName is used when a request does not name the root type.
const DefaultTypeName = "Root"

// Generate runs the pipeline for one request. Emission is all-or-nothing:
// any failure returns an error and no partial output.
func Generate(ctx context.Context, req *types.GenerateRequest) (*types.GenerateResult, error) {
	if !req.Output.Valid() {
		return nil, fmt.Errorf("unknown output format %q", req.Output)
	}
	name := req.Name
	if name == "" {
		name = DefaultTypeName
	}
	opts := types.SmartDefaults()
	if req.Options != nil {
		opts = *req.Options
	}

	var parsed *parse.ParsedInput
	var err error
	if req.Format != "" {
		if !req.Format.Valid() {
			return nil, fmt.Errorf("unknown input format %q", req.Format)
		}
		parsed, err = parse.Parse(req.Input, req.Format)
	} else {
		parsed, err = parse.ParseAuto(req.Input)
	}
	if err != nil {
		return nil, err
	}

	primary, extras := samples(parsed)
	if req.Select != "" {
		primary, extras, err = query.Select(ctx, req.Select, primary, extras)
		if err != nil {
			return nil, err
		}
	}

	output, err := render(ctx, req.Output, name, opts, primary, extras)
	if err != nil {
		return nil, err
	}

	return &types.GenerateResult{
		Output:       output,
		Format:       parsed.Format,
		OutputFormat: req.Output,
		SampleCount:  1 + len(extras),
	}, nil
}

// samples splits a parsed input into the primary sample and extras. For
// row-oriented formats each row is one sample of the same logical entity;
// for document formats the whole tree is the single sample.
func samples(parsed *parse.ParsedInput) (*value.Value, []*value.Value) {
	switch parsed.Format {
	case types.FormatJSONLines, types.FormatCSV:
		if parsed.Data.Kind == value.Array && len(parsed.Data.Items) > 0 {
			return parsed.Data.Items[0], parsed.Data.Items[1:]
		}
	}
	return parsed.Data, nil
}

func render(ctx context.Context, output types.OutputFormat, name string, opts types.Options, primary *value.Value, extras []*value.Value) (string, error) {
	switch output {
	case types.OutputInterface, types.OutputType:
		text, err := tsinfer.Infer(ctx, primary, name, output == types.OutputType)
		if err != nil {
			return "", &types.EmissionError{Backend: output, Err: err}
		}
		return text, nil
	case types.OutputAdvancedInterface, types.OutputAdvancedType:
		schema := analyze.Analyze(primary, extras)
		return emit.TypeScript(schema, name, output == types.OutputAdvancedType, opts)
	case types.OutputZod:
		return emit.Zod(primary, name)
	case types.OutputJSONSchema:
		return emit.JSONSchema(primary, name)
	case types.OutputGraphQL:
		return emit.GraphQL(primary, name)
	}
	return "", fmt.Errorf("unknown output format %q", output)
}
