package emit

import (
	"encoding/json"
	"fmt"
	"strings"

	invopop "github.com/invopop/jsonschema"

	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// jsonSchemaVersion is the draft the emitted documents declare.
const jsonSchemaVersion = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema renders a draft 2020-12 JSON Schema document for one concrete
// sample. Every key present in the sample is required and additional
// properties are rejected; like the Zod backend, multi-sample analysis is
// intentionally not consulted.
func JSONSchema(sample *value.Value, name string) (string, error) {
	root := jsonSchemaForValue(sample)
	root.Version = jsonSchemaVersion
	root.ID = invopop.ID(fmt.Sprintf("https://example.com/%s.schema.json", strings.ToLower(name)))
	root.Title = name

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", &types.EmissionError{Backend: types.OutputJSONSchema, Err: err}
	}
	return string(data) + "\n", nil
}

func jsonSchemaForValue(v *value.Value) *invopop.Schema {
	switch v.Kind {
	case value.Null:
		return &invopop.Schema{Type: "null"}
	case value.Bool:
		return &invopop.Schema{Type: "boolean"}
	case value.Number:
		if v.IsInt() {
			return &invopop.Schema{Type: "integer"}
		}
		return &invopop.Schema{Type: "number"}
	case value.String:
		return &invopop.Schema{Type: "string"}
	case value.Array:
		s := &invopop.Schema{Type: "array"}
		if len(v.Items) > 0 {
			s.Items = jsonSchemaForValue(v.Items[0])
		}
		return s
	case value.Object:
		s := &invopop.Schema{
			Type:                 "object",
			Properties:           invopop.NewProperties(),
			AdditionalProperties: invopop.FalseSchema,
		}
		for _, key := range v.Keys() {
			field, _ := v.Get(key)
			s.Properties.Set(key, jsonSchemaForValue(field))
			s.Required = append(s.Required, key)
		}
		return s
	}
	return &invopop.Schema{}
}
