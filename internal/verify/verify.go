// Package verify validates sample data against JSON Schema documents, such
// as the ones the pipeline itself emits.
package verify

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/typeforge/typeforge-mcp/pkg/types"
)

// Checker validates values against one compiled schema.
type Checker struct {
	schema *jsonschema.Schema
}

// Compile parses and compiles a JSON Schema document.
func Compile(schemaText string) (*Checker, error) {
	var doc any
	if err := json.Unmarshal([]byte(schemaText), &doc); err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Checker{schema: compiled}, nil
}

// Validate checks a raw JSON sample against the schema.
func (c *Checker) Validate(sample []byte) *types.ValidationResult {
	var value any
	if err := json.Unmarshal(sample, &value); err != nil {
		return &types.ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("invalid JSON: %s", err)},
		}
	}
	return c.ValidateValue(value)
}

// ValidateValue checks an already-parsed value against the schema.
func (c *Checker) ValidateValue(value any) *types.ValidationResult {
	err := c.schema.Validate(value)
	if err == nil {
		return &types.ValidationResult{Valid: true}
	}
	return &types.ValidationResult{
		Valid:  false,
		Errors: extractErrors(err),
	}
}

// printer renders localized validation messages in English.
var printer = message.NewPrinter(language.English)

func extractErrors(err error) []string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}

	byPath := make(map[string][]string)
	collectLeaves(verr, byPath)

	var result []string
	for path, msgs := range byPath {
		seen := make(map[string]bool)
		for _, msg := range msgs {
			if seen[msg] {
				continue
			}
			seen[msg] = true
			if path != "" {
				result = append(result, fmt.Sprintf("%s: %s", path, msg))
			} else {
				result = append(result, msg)
			}
		}
	}
	return result
}

// collectLeaves walks the cause tree and keeps only concrete leaf failures,
// skipping the $ref bookkeeping messages the library produces along the way.
func collectLeaves(err *jsonschema.ValidationError, byPath map[string][]string) {
	path := ""
	if len(err.InstanceLocation) > 0 {
		path = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			byPath[path] = append(byPath[path], msg)
		}
	}

	for _, cause := range err.Causes {
		collectLeaves(cause, byPath)
	}
}
