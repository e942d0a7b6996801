// Package emit contains the four output backends of the pipeline: TypeScript
// definitions, Zod validation schemas, JSON Schema documents, and GraphQL
// SDL. Every backend is a pure function; auxiliary definitions discovered
// while recursing accumulate in a per-call emitter value, never in package
// state, so concurrent emissions cannot interfere.
package emit

import (
	"fmt"
	"strings"

	"github.com/typeforge/typeforge-mcp/pkg/analyze"
	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// TypeScript renders the merged schema as TypeScript definitions. useAlias
// selects "type" aliases over "interface" declarations. The root definition
// comes first, followed by hoisted nested types and enums in discovery
// order.
func TypeScript(schema *analyze.Schema, name string, useAlias bool, opts types.Options) (string, error) {
	e := &tsEmitter{opts: opts, useAlias: useAlias}

	var root string
	switch schema.Kind {
	case analyze.KindObject:
		root = e.renderObject(schema, name)
	case analyze.KindArray:
		root = fmt.Sprintf("type %s = %s;", name, e.arrayType(name, schema))
	case analyze.KindScalar:
		root = fmt.Sprintf("type %s = %s;", name, tsScalar(schema.Scalar))
	default:
		return "", &types.EmissionError{
			Backend: types.OutputAdvancedInterface,
			Err:     fmt.Errorf("unsupported schema node kind %d", schema.Kind),
		}
	}

	parts := append([]string{root}, e.defs...)
	return strings.Join(parts, "\n\n") + "\n", nil
}

// tsEmitter accumulates hoisted definitions for one emission. A fresh value
// is created per call.
type tsEmitter struct {
	opts     types.Options
	useAlias bool
	defs     []string
}

// indexSignatureThreshold is the declared-field count above which a shape
// gets a catch-all index entry (when enabled).
const indexSignatureThreshold = 10

func (e *tsEmitter) renderObject(s *analyze.Schema, name string) string {
	var b strings.Builder
	if e.useAlias {
		fmt.Fprintf(&b, "type %s = {\n", name)
	} else {
		fmt.Fprintf(&b, "interface %s {\n", name)
	}

	for _, key := range s.Keys {
		p := s.Properties[key]

		optional := ""
		if e.opts.DetectOptionalProperties && p.Optional {
			optional = "?"
		}
		readonly := ""
		if e.opts.UseReadonly {
			readonly = "readonly "
		}

		fieldType, note := e.propertyType(key, p)
		fmt.Fprintf(&b, "  %s%s%s: %s;", readonly, propertyKey(key), optional, fieldType)
		if note != "" {
			fmt.Fprintf(&b, " // %s", note)
		}
		b.WriteString("\n")
	}

	if e.opts.GenerateIndexSignatures && len(s.Keys) > indexSignatureThreshold {
		b.WriteString("  [key: string]: unknown;\n")
	}

	b.WriteString("}")
	if e.useAlias {
		b.WriteString(";")
	}
	return b.String()
}

// propertyType renders the type expression for one field and an optional
// trailing annotation. Enum replacement takes priority over the raw string
// type, then pattern annotation, then the plain or union rendering.
func (e *tsEmitter) propertyType(key string, p *analyze.Property) (string, string) {
	if len(p.Types) == 0 {
		// Only null (or nothing) was ever observed.
		return "any", ""
	}

	if e.opts.GenerateEnums && p.Enum {
		name := typeName(key)
		e.defs = append(e.defs, renderEnum(name, p.EnumValues))
		return name, ""
	}

	if e.opts.DetectPatterns && p.Pattern != analyze.PatternNone {
		return "string", string(p.Pattern)
	}

	kinds := p.Types
	if !e.opts.DetectUnionTypes {
		// Unions disabled: the first observed type wins.
		kinds = kinds[:1]
	}

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, e.kindType(k, key, p.Nested))
	}
	return strings.Join(parts, " | "), ""
}

// kindType renders one observed kind, hoisting nested shapes when the merged
// nested schema matches the kind.
func (e *tsEmitter) kindType(k value.Kind, key string, nested *analyze.Schema) string {
	switch k {
	case value.Bool, value.Number, value.String, value.Null:
		return tsScalar(k)
	case value.Object:
		if nested != nil && nested.Kind == analyze.KindObject {
			name := typeName(key)
			e.defs = append(e.defs, e.renderObject(nested, name))
			return name
		}
		return "Record<string, unknown>"
	case value.Array:
		if nested != nil && nested.Kind == analyze.KindArray {
			return e.arrayType(key, nested)
		}
		return "unknown[]"
	}
	return "any"
}

// arrayType renders an array schema. Object items hoist a singularized type
// name ("orders" yields "Order[]").
func (e *tsEmitter) arrayType(key string, s *analyze.Schema) string {
	if s.Items == nil {
		return "any[]"
	}
	switch s.Items.Kind {
	case analyze.KindObject:
		name := typeName(singularize(key))
		e.defs = append(e.defs, e.renderObject(s.Items, name))
		return name + "[]"
	case analyze.KindArray:
		return "(" + e.arrayType(key, s.Items) + ")[]"
	}
	return tsScalar(s.Items.Scalar) + "[]"
}

func renderEnum(name string, values []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "enum %s {\n", name)
	for _, v := range values {
		fmt.Fprintf(&b, "  %s = %q,\n", enumMemberName(v), v)
	}
	b.WriteString("}")
	return b.String()
}

func tsScalar(k value.Kind) string {
	switch k {
	case value.Null:
		return "null"
	case value.Bool:
		return "boolean"
	case value.Number:
		return "number"
	case value.String:
		return "string"
	}
	return "any"
}
