package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/typeforge/typeforge-mcp/pkg/detect"
)

// DetectFormatInput is the input for typeforge_detect_format.
type DetectFormatInput struct {
	// Input is the raw sample text to classify.
	Input string `json:"input"`
}

// DetectFormatOutput is the output for typeforge_detect_format.
type DetectFormatOutput struct {
	Format string `json:"format"`
}

// ToolDetectFormat classifies raw text into one of the five input formats.
func ToolDetectFormat(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DetectFormatInput) (*sdkmcp.CallToolResult, DetectFormatOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DetectFormatInput) (*sdkmcp.CallToolResult, DetectFormatOutput, error) {
		if input.Input == "" {
			return nil, DetectFormatOutput{}, fmt.Errorf("input is required")
		}
		if len(input.Input) > d.Config.MaxInputBytes {
			return nil, DetectFormatOutput{}, fmt.Errorf("input exceeds %d bytes", d.Config.MaxInputBytes)
		}

		return nil, DetectFormatOutput{
			Format: string(detect.Detect(input.Input)),
		}, nil
	}
}
