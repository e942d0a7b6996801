// Package tsinfer infers TypeScript definitions from a single concrete
// sample. Unlike the analyzer-driven emitter it never merges samples: it
// walks one value tree, names every distinct object shape, and structurally
// deduplicates identical shapes into one shared named type.
package tsinfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// Infer renders TypeScript definitions for one sample. useAlias selects
// "type" aliases over "interface" declarations. The root definition comes
// first, followed by nested shapes in discovery order. Two fields whose
// object values have the same structural signature share one definition;
// distinct shapes competing for the same derived name get a numeric suffix.
func Infer(ctx context.Context, sample *value.Value, rootName string, useAlias bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e := &inferrer{
		useAlias:  useAlias,
		sigToName: make(map[string]string),
		nameToSig: make(map[string]string),
	}

	switch sample.Kind {
	case value.Object:
		e.defineShape(rootName, sample)
	case value.Array:
		elem := e.elementType(rootName, sample)
		e.defs = append([]string{fmt.Sprintf("type %s = %s[];", rootName, elem)}, e.defs...)
	default:
		e.defs = []string{fmt.Sprintf("type %s = %s;", rootName, scalarType(sample.Kind))}
	}

	return strings.Join(e.defs, "\n\n") + "\n", nil
}

type inferrer struct {
	useAlias  bool
	defs      []string
	sigToName map[string]string
	nameToSig map[string]string
}

// defineShape names an object shape and renders its definition, reusing an
// existing name when the structural signature was seen before. Returns the
// name to reference.
func (e *inferrer) defineShape(preferred string, obj *value.Value) string {
	sig := signature(obj)
	if name, ok := e.sigToName[sig]; ok {
		return name
	}

	name := preferred
	for i := 2; ; i++ {
		taken, ok := e.nameToSig[name]
		if !ok {
			break
		}
		if taken == sig {
			return name
		}
		name = fmt.Sprintf("%s%d", preferred, i)
	}
	e.sigToName[sig] = name
	e.nameToSig[name] = sig

	// Reserve a slot before recursing so the definition order follows
	// discovery order even though nested shapes finish rendering first.
	slot := len(e.defs)
	e.defs = append(e.defs, "")

	var b strings.Builder
	if e.useAlias {
		fmt.Fprintf(&b, "type %s = {\n", name)
	} else {
		fmt.Fprintf(&b, "interface %s {\n", name)
	}
	for _, key := range obj.Keys() {
		field, _ := obj.Get(key)
		fmt.Fprintf(&b, "  %s: %s;\n", fieldKey(key), e.fieldType(key, field))
	}
	b.WriteString("}")
	if e.useAlias {
		b.WriteString(";")
	}

	e.defs[slot] = b.String()
	return name
}

func (e *inferrer) fieldType(key string, v *value.Value) string {
	switch v.Kind {
	case value.Object:
		return e.defineShape(derivedName(key), v)
	case value.Array:
		return e.elementType(key, v) + "[]"
	}
	return scalarType(v.Kind)
}

// elementType renders the element type of an array from its first element.
func (e *inferrer) elementType(key string, arr *value.Value) string {
	if len(arr.Items) == 0 {
		return "any"
	}
	first := arr.Items[0]
	switch first.Kind {
	case value.Object:
		return e.defineShape(derivedName(singular(key)), first)
	case value.Array:
		return "(" + e.elementType(key, first) + "[])"
	}
	return scalarType(first.Kind)
}

// signature computes a structural fingerprint of a value: two objects with
// the same keys in the same order and structurally identical field types
// produce the same signature.
func signature(v *value.Value) string {
	switch v.Kind {
	case value.Object:
		parts := make([]string, 0, v.Len())
		for _, key := range v.Keys() {
			field, _ := v.Get(key)
			parts = append(parts, key+":"+signature(field))
		}
		return "{" + strings.Join(parts, ",") + "}"
	case value.Array:
		if len(v.Items) == 0 {
			return "[]"
		}
		return "[" + signature(v.Items[0]) + "]"
	}
	return v.Kind.String()
}

func scalarType(k value.Kind) string {
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
