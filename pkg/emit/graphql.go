package emit

import (
	"fmt"
	"strings"

	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// GraphQL renders a GraphQL SDL type system for one concrete sample. Nested
// objects are hoisted into named types derived from the capitalized field
// name; sibling fields that derive the same type name are not disambiguated
// (known limitation). Field names outside the SDL name grammar are rewritten
// with underscores. Integral numbers map to Int, the rest to Float. Empty
// arrays fall back to [String].
func GraphQL(sample *value.Value, name string) (string, error) {
	if sample.Kind != value.Object {
		return "", &types.EmissionError{
			Backend: types.OutputGraphQL,
			Err:     fmt.Errorf("GraphQL output requires an object sample, got %s", sample.Kind),
		}
	}

	e := &gqlEmitter{}
	e.renderType(name, sample)
	return strings.Join(e.defs, "\n\n") + "\n", nil
}

// gqlEmitter accumulates hoisted type definitions for one emission.
type gqlEmitter struct {
	defs []string
}

func (e *gqlEmitter) renderType(name string, obj *value.Value) {
	// Reserve a slot before recursing so the definition order follows
	// discovery order, root type first.
	slot := len(e.defs)
	e.defs = append(e.defs, "")

	var b strings.Builder
	fmt.Fprintf(&b, "type %s {\n", name)
	for _, key := range obj.Keys() {
		field, _ := obj.Get(key)
		fmt.Fprintf(&b, "  %s: %s\n", gqlFieldName(key), e.fieldType(key, field))
	}
	b.WriteString("}")
	e.defs[slot] = b.String()
}

func (e *gqlEmitter) fieldType(key string, v *value.Value) string {
	switch v.Kind {
	case value.Bool:
		return "Boolean"
	case value.Number:
		if v.IsInt() {
			return "Int"
		}
		return "Float"
	case value.String, value.Null:
		// GraphQL has no null type; a null-valued field falls back to the
		// nullable String scalar.
		return "String"
	case value.Array:
		if len(v.Items) == 0 {
			return "[String]"
		}
		return "[" + e.fieldType(key, v.Items[0]) + "]"
	case value.Object:
		name := typeName(key)
		e.renderType(name, v)
		return name
	}
	return "String"
}
