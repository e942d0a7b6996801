package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/typeforge/typeforge-mcp/internal/verify"
)

// ValidateInput is the input for typeforge_validate.
type ValidateInput struct {
	// Schema is a JSON Schema document, such as one produced by
	// typeforge_generate with output "json-schema".
	Schema string `json:"schema"`
	// Sample is the raw JSON value to validate.
	Sample string `json:"sample"`
}

// ValidateOutput is the output for typeforge_validate.
type ValidateOutput struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ToolValidate validates a JSON sample against a JSON Schema document.
func ToolValidate(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateInput) (*sdkmcp.CallToolResult, ValidateOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateInput) (*sdkmcp.CallToolResult, ValidateOutput, error) {
		if input.Schema == "" {
			return nil, ValidateOutput{}, fmt.Errorf("schema is required")
		}
		if input.Sample == "" {
			return nil, ValidateOutput{}, fmt.Errorf("sample is required")
		}

		checker, err := verify.Compile(input.Schema)
		if err != nil {
			return nil, ValidateOutput{}, err
		}

		result := checker.Validate([]byte(input.Sample))
		return nil, ValidateOutput{
			Valid:  result.Valid,
			Errors: result.Errors,
		}, nil
	}
}
