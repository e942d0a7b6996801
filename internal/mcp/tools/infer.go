package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/typeforge/typeforge-mcp/internal/query"
	"github.com/typeforge/typeforge-mcp/pkg/analyze"
	"github.com/typeforge/typeforge-mcp/pkg/parse"
	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// InferSchemaInput is the input for typeforge_infer_schema.
type InferSchemaInput struct {
	GenerateArgs
}

// InferSchemaOutput is the output for typeforge_infer_schema.
type InferSchemaOutput struct {
	Schema      *SchemaDescription `json:"schema"`
	Format      string             `json:"format"`
	SampleCount int                `json:"sample_count"`
}

// SchemaDescription is the JSON mirror of a merged schema node.
type SchemaDescription struct {
	Kind       string                          `json:"kind"`
	Scalar     string                          `json:"scalar,omitempty"`
	Properties map[string]*PropertyDescription `json:"properties,omitempty"`
	Keys       []string                        `json:"keys,omitempty"`
	Items      *SchemaDescription              `json:"items,omitempty"`
}

// PropertyDescription is the JSON mirror of one field's analysis.
type PropertyDescription struct {
	Optional   bool               `json:"optional"`
	Union      bool               `json:"union"`
	Types      []string           `json:"types"`
	Enum       bool               `json:"enum"`
	EnumValues []string           `json:"enum_values,omitempty"`
	Pattern    string             `json:"pattern,omitempty"`
	Nested     *SchemaDescription `json:"nested,omitempty"`
}

// ToolInferSchema exposes the merged structural schema for inspection
// without emitting any target representation.
func ToolInferSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, InferSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, InferSchemaOutput, error) {
		genReq, err := buildRequest(d, input.GenerateArgs, types.OutputAdvancedInterface)
		if err != nil {
			return nil, InferSchemaOutput{}, err
		}

		var parsed *parse.ParsedInput
		if genReq.Format != "" {
			parsed, err = parse.Parse(genReq.Input, genReq.Format)
		} else {
			parsed, err = parse.ParseAuto(genReq.Input)
		}
		if err != nil {
			return nil, InferSchemaOutput{}, err
		}

		primary, extras := splitSamples(parsed)
		if genReq.Select != "" {
			primary, extras, err = query.Select(ctx, genReq.Select, primary, extras)
			if err != nil {
				return nil, InferSchemaOutput{}, err
			}
		}

		schema := analyze.Analyze(primary, extras)
		return nil, InferSchemaOutput{
			Schema:      describeSchema(schema),
			Format:      string(parsed.Format),
			SampleCount: 1 + len(extras),
		}, nil
	}
}

func splitSamples(parsed *parse.ParsedInput) (*value.Value, []*value.Value) {
	switch parsed.Format {
	case types.FormatJSONLines, types.FormatCSV:
		if parsed.Data.Kind == value.Array && len(parsed.Data.Items) > 0 {
			return parsed.Data.Items[0], parsed.Data.Items[1:]
		}
	}
	return parsed.Data, nil
}

func describeSchema(s *analyze.Schema) *SchemaDescription {
	if s == nil {
		return nil
	}
	desc := &SchemaDescription{}
	switch s.Kind {
	case analyze.KindScalar:
		desc.Kind = "scalar"
		desc.Scalar = s.Scalar.String()
	case analyze.KindArray:
		desc.Kind = "array"
		desc.Items = describeSchema(s.Items)
	case analyze.KindObject:
		desc.Kind = "object"
		desc.Keys = s.Keys
		desc.Properties = make(map[string]*PropertyDescription, len(s.Properties))
		for key, p := range s.Properties {
			desc.Properties[key] = describeProperty(p)
		}
	}
	return desc
}

func describeProperty(p *analyze.Property) *PropertyDescription {
	kinds := make([]string, 0, len(p.Types))
	for _, k := range p.Types {
		kinds = append(kinds, k.String())
	}
	desc := &PropertyDescription{
		Optional:   p.Optional,
		Union:      p.Union,
		Types:      kinds,
		Enum:       p.Enum,
		EnumValues: p.EnumValues,
		Nested:     describeSchema(p.Nested),
	}
	if p.Pattern != analyze.PatternNone {
		desc.Pattern = string(p.Pattern)
	}
	return desc
}
