package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: typeforge_detect_format
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_detect_format",
		Description: "Classify raw sample text into one of the supported input formats (json, json5, yaml, csv, jsonlines). Detection is heuristic and advisory; generation tools accept an explicit format to bypass it.",
	}, ToolDetectFormat(d))

	// Tool 2: typeforge_generate
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_generate",
		Description: "Generate type definitions from sample data in one output format. Outputs: interface/type (TypeScript from a single sample with shape deduplication), advanced-interface/advanced-type (TypeScript from the merged multi-sample schema with optionals, unions, enums, and pattern annotations), zod, json-schema (draft 2020-12), graphql. Malformed JSON is auto-repaired before parsing. Use select to apply a jq expression to the parsed data first.",
	}, ToolGenerate(d))

	// Tool 3: typeforge_generate_all
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_generate_all",
		Description: "Generate every output format for the same input in one call. Returns a results map keyed by output format. Fails as a whole if any format fails (a non-object sample cannot render GraphQL, for example).",
	}, ToolGenerateAll(d))

	// Tool 4: typeforge_infer_schema
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_infer_schema",
		Description: "Inspect the merged structural schema without emitting any target representation. Returns per-field optionality, observed types, union/enum flags, detected semantic pattern (email, uuid, date, url), and nested shapes. For jsonlines and csv inputs every row counts as one sample.",
	}, ToolInferSchema(d))

	// Tool 5: typeforge_validate
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typeforge_validate",
		Description: "Validate a JSON sample against a JSON Schema document, such as one produced by typeforge_generate with output json-schema. Returns valid plus deduplicated per-path error messages.",
	}, ToolValidate(d))
}
