package tools

import (
	"context"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/typeforge/typeforge-mcp/pkg/generate"
	"github.com/typeforge/typeforge-mcp/pkg/types"
)

// GenerateAllInput is the input for typeforge_generate_all.
type GenerateAllInput struct {
	GenerateArgs
}

// GenerateAllOutput is the output for typeforge_generate_all. Results are
// keyed by output format.
type GenerateAllOutput struct {
	Results     map[string]string `json:"results"`
	Format      string            `json:"format"`
	SampleCount int               `json:"sample_count"`
}

// ToolGenerateAll generates every output format for the same input. The
// pipeline itself is sequential per format; formats run concurrently and
// the whole call fails if any format fails.
func ToolGenerateAll(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateAllInput) (*sdkmcp.CallToolResult, GenerateAllOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateAllInput) (*sdkmcp.CallToolResult, GenerateAllOutput, error) {
		// Validate shared arguments once before fanning out.
		if _, err := buildRequest(d, input.GenerateArgs, types.OutputInterface); err != nil {
			return nil, GenerateAllOutput{}, err
		}

		output := GenerateAllOutput{
			Results: make(map[string]string, len(types.AllOutputFormats)),
		}
		var mu sync.Mutex

		g, gctx := errgroup.WithContext(ctx)
		for _, format := range types.AllOutputFormats {
			g.Go(func() error {
				genReq, err := buildRequest(d, input.GenerateArgs, format)
				if err != nil {
					return err
				}
				result, err := generate.Generate(gctx, genReq)
				if err != nil {
					return err
				}

				mu.Lock()
				defer mu.Unlock()
				output.Results[string(format)] = result.Output
				output.Format = string(result.Format)
				output.SampleCount = result.SampleCount
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, GenerateAllOutput{}, err
		}

		return nil, output, nil
	}
}
