// Package types defines the shared contracts of the typeforge pipeline:
// input and output formats, generation options, results, and error kinds.
package types

import "fmt"

// InputFormat identifies a supported source format for sample data.
type InputFormat string

// Input format constants.
const (
	FormatJSON      InputFormat = "json"
	FormatJSON5     InputFormat = "json5"
	FormatYAML      InputFormat = "yaml"
	FormatCSV       InputFormat = "csv"
	FormatJSONLines InputFormat = "jsonlines"
)

// Valid reports whether f is one of the five supported input formats.
func (f InputFormat) Valid() bool {
	switch f {
	case FormatJSON, FormatJSON5, FormatYAML, FormatCSV, FormatJSONLines:
		return true
	}
	return false
}

// OutputFormat identifies a target representation for generated definitions.
type OutputFormat string

// Output format constants.
const (
	OutputInterface         OutputFormat = "interface"
	OutputType              OutputFormat = "type"
	OutputAdvancedInterface OutputFormat = "advanced-interface"
	OutputAdvancedType      OutputFormat = "advanced-type"
	OutputZod               OutputFormat = "zod"
	OutputJSONSchema        OutputFormat = "json-schema"
	OutputGraphQL           OutputFormat = "graphql"
)

// AllOutputFormats lists every output format in a stable order.
var AllOutputFormats = []OutputFormat{
	OutputInterface,
	OutputType,
	OutputAdvancedInterface,
	OutputAdvancedType,
	OutputZod,
	OutputJSONSchema,
	OutputGraphQL,
}

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	for _, known := range AllOutputFormats {
		if f == known {
			return true
		}
	}
	return false
}

// Options control the advanced TypeScript output formats. The other backends
// ignore them entirely.
type Options struct {
	DetectOptionalProperties bool `json:"detect_optional_properties"`
	GenerateEnums            bool `json:"generate_enums"`
	DetectUnionTypes         bool `json:"detect_union_types"`
	UseReadonly              bool `json:"use_readonly"`
	GenerateIndexSignatures  bool `json:"generate_index_signatures"`
	DetectPatterns           bool `json:"detect_patterns"`
}

// SmartDefaults returns the default option preset: everything enabled except
// index signatures.
func SmartDefaults() Options {
	return Options{
		DetectOptionalProperties: true,
		GenerateEnums:            true,
		DetectUnionTypes:         true,
		UseReadonly:              false,
		GenerateIndexSignatures:  false,
		DetectPatterns:           true,
	}
}

// GenerateRequest describes one invocation of the pipeline.
type GenerateRequest struct {
	// Name is the root type name for the generated definitions.
	Name string
	// Input is the raw sample text.
	Input string
	// Format forces a specific input format. Empty means auto-detect.
	Format InputFormat
	// Output selects the target representation.
	Output OutputFormat
	// Options override the smart-defaults preset. Nil means use the preset.
	Options *Options
	// Select is an optional jq expression applied to the parsed samples
	// before analysis. Each jq output becomes one sample.
	Select string
}

// GenerateResult is the outcome of a successful generation.
type GenerateResult struct {
	// Output is the generated definition text.
	Output string `json:"output"`
	// Format is the input format that was actually parsed.
	Format InputFormat `json:"format"`
	// OutputFormat echoes the requested target representation.
	OutputFormat OutputFormat `json:"output_format"`
	// SampleCount is the number of samples that fed the analysis.
	SampleCount int `json:"sample_count"`
}

// ValidationResult contains the result of validating a single value against
// a schema.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ParseError reports a parser failure for a specific input format. On the
// JSON path the message carries both the raw parse error and the post-repair
// parse error.
type ParseError struct {
	Format InputFormat
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Format, e.Msg)
}

// EmissionError reports a failure in an emitter backend or in its delegated
// type-inference call.
type EmissionError struct {
	Backend OutputFormat
	Err     error
}

func (e *EmissionError) Error() string {
	return fmt.Sprintf("emitting %s: %v", e.Backend, e.Err)
}

func (e *EmissionError) Unwrap() error { return e.Err }

// AnalysisError is reserved for defensive use. The analyzer is total over
// normalized trees and is not expected to produce it.
type AnalysisError struct {
	Msg string
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyzing samples: %s", e.Msg)
}
