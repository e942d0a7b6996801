package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/typeforge/typeforge-mcp/internal/cache"
	"github.com/typeforge/typeforge-mcp/pkg/generate"
	"github.com/typeforge/typeforge-mcp/pkg/types"
)

// GenerateInput is the input for typeforge_generate.
type GenerateInput struct {
	GenerateArgs
	// Output selects the target representation: interface, type,
	// advanced-interface, advanced-type, zod, json-schema, graphql.
	Output string `json:"output"`
}

// GenerateOutput is the output for typeforge_generate.
type GenerateOutput struct {
	Output       string `json:"output"`
	Format       string `json:"format"`
	OutputFormat string `json:"output_format"`
	SampleCount  int    `json:"sample_count"`
	Cached       bool   `json:"cached,omitempty"`
}

// ToolGenerate runs the full pipeline for one output format.
func ToolGenerate(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateInput) (*sdkmcp.CallToolResult, GenerateOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateInput) (*sdkmcp.CallToolResult, GenerateOutput, error) {
		output := types.OutputFormat(input.Output)
		if !output.Valid() {
			return nil, GenerateOutput{}, fmt.Errorf("unknown output format %q", input.Output)
		}

		genReq, err := buildRequest(d, input.GenerateArgs, output)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		key := cache.Key(genReq)
		if result, ok := d.Cache.Get(key); ok {
			return nil, toGenerateOutput(result, true), nil
		}

		result, err := generate.Generate(ctx, genReq)
		if err != nil {
			return nil, GenerateOutput{}, err
		}
		d.Cache.Put(key, result)

		return nil, toGenerateOutput(result, false), nil
	}
}

func toGenerateOutput(result *types.GenerateResult, cached bool) GenerateOutput {
	return GenerateOutput{
		Output:       result.Output,
		Format:       string(result.Format),
		OutputFormat: string(result.OutputFormat),
		SampleCount:  result.SampleCount,
		Cached:       cached,
	}
}
