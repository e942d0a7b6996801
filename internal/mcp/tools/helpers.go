// Package tools contains MCP tool implementations for typeforge.
package tools

import (
	"fmt"
	"regexp"

	"github.com/typeforge/typeforge-mcp/pkg/types"
)

// typeNameRe matches a valid root type name.
var typeNameRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// GenerateArgs are the request fields shared by the generation tools.
type GenerateArgs struct {
	// Name is the root type name. Defaults to the configured default.
	Name string `json:"name,omitempty"`
	// Input is the raw sample text.
	Input string `json:"input"`
	// Format forces an input format (json, json5, yaml, csv, jsonlines).
	// Empty means auto-detect.
	Format string `json:"format,omitempty"`
	// Select is an optional jq expression applied before analysis.
	Select string `json:"select,omitempty"`
	// Options override the default analysis options.
	Options *types.Options `json:"options,omitempty"`
}

// buildRequest validates shared arguments and assembles a pipeline request.
func buildRequest(d *Deps, args GenerateArgs, output types.OutputFormat) (*types.GenerateRequest, error) {
	if args.Input == "" {
		return nil, fmt.Errorf("input is required")
	}
	if len(args.Input) > d.Config.MaxInputBytes {
		return nil, fmt.Errorf("input exceeds %d bytes", d.Config.MaxInputBytes)
	}

	name := args.Name
	if name == "" {
		name = d.Config.DefaultTypeName
	}
	if !typeNameRe.MatchString(name) {
		return nil, fmt.Errorf("invalid type name %q", name)
	}

	format := types.InputFormat(args.Format)
	if args.Format != "" && !format.Valid() {
		return nil, fmt.Errorf("unknown input format %q", args.Format)
	}

	return &types.GenerateRequest{
		Name:    name,
		Input:   args.Input,
		Format:  format,
		Output:  output,
		Options: args.Options,
		Select:  args.Select,
	}, nil
}
