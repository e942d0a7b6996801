// Package analyze merges one or more normalized samples of the same logical
// entity into a structural schema: per-field optionality, union-ness, enum
// candidacy, detected semantic patterns, and nested structure.
package analyze

import "github.com/typeforge/typeforge-mcp/pkg/value"

// NodeKind discriminates the variants of a Schema node.
type NodeKind int

// Schema node kinds.
const (
	KindScalar NodeKind = iota
	KindObject
	KindArray
)

// Schema describes the merged shape of all supplied samples. Only the fields
// matching Kind are meaningful.
type Schema struct {
	Kind NodeKind

	// Object: field names in observation order and their analyses.
	Keys       []string
	Properties map[string]*Property

	// Array: the merged item shape. Nil when every observed sequence was
	// empty.
	Items *Schema

	// Scalar: the observed value kind.
	Scalar value.Kind
}

// Property is the merged analysis of one object field across all samples.
type Property struct {
	// Optional is set when the field is missing or null in at least one
	// sample.
	Optional bool
	// Union is set when more than one non-null kind was observed.
	Union bool
	// Types holds the observed non-null kinds in first-seen order.
	Types []value.Kind
	// Values holds the non-null observed values in sample order.
	Values []*value.Value
	// Pattern is the detected semantic category, or PatternNone.
	Pattern Pattern
	// Enum is set when the value set looks like a closed set of strings;
	// EnumValues then holds the distinct values in first-seen order.
	Enum       bool
	EnumValues []string
	// Nested is the merged schema of object- or array-valued observations.
	Nested *Schema
}

// Analyze merges the primary sample and extras into one Schema. The primary
// sample is privileged for shape: it defines the base field set and nesting;
// extras only add keys, optionality, union, and enum signal. The function is
// total over normalized trees and deterministic given sample order.
func Analyze(primary *value.Value, extras []*value.Value) *Schema {
	switch primary.Kind {
	case value.Array:
		return analyzeArray(primary, extras)
	case value.Object:
		return analyzeObject(primary, extras)
	}
	return &Schema{Kind: KindScalar, Scalar: primary.Kind}
}

// analyzeArray picks the representative item (first element of the primary,
// or of the first non-empty extra sequence) and feeds every remaining
// element as an additional sample of the item shape.
func analyzeArray(primary *value.Value, extras []*value.Value) *Schema {
	pool := make([]*value.Value, 0, len(primary.Items))
	pool = append(pool, primary.Items...)
	for _, extra := range extras {
		if extra != nil && extra.Kind == value.Array {
			pool = append(pool, extra.Items...)
		}
	}

	if len(pool) == 0 {
		return &Schema{Kind: KindArray}
	}
	return &Schema{Kind: KindArray, Items: Analyze(pool[0], pool[1:])}
}

func analyzeObject(primary *value.Value, extras []*value.Value) *Schema {
	// Samples contributing field observations: the primary plus every extra
	// that is itself an object.
	samples := []*value.Value{primary}
	for _, extra := range extras {
		if extra != nil && extra.Kind == value.Object {
			samples = append(samples, extra)
		}
	}

	// Field set: union of keys. The primary defines the base order; later
	// samples append keys they introduce.
	var keys []string
	seen := make(map[string]bool)
	for _, sample := range samples {
		for _, k := range sample.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	props := make(map[string]*Property, len(keys))
	for _, k := range keys {
		props[k] = analyzeProperty(k, samples)
	}
	return &Schema{Kind: KindObject, Keys: keys, Properties: props}
}

func analyzeProperty(key string, samples []*value.Value) *Property {
	p := &Property{}

	for _, sample := range samples {
		v, ok := sample.Get(key)
		if !ok || v.Kind == value.Null {
			// Missing or explicitly null in a sample where other fields were
			// present.
			p.Optional = true
			continue
		}
		p.Values = append(p.Values, v)
	}

	kindSeen := make(map[value.Kind]bool)
	for _, v := range p.Values {
		if !kindSeen[v.Kind] {
			kindSeen[v.Kind] = true
			p.Types = append(p.Types, v.Kind)
		}
	}
	p.Union = len(p.Types) > 1

	p.Enum, p.EnumValues = enumCandidate(p.Values)
	p.Pattern = DetectPattern(p.Values)

	// Nested shapes: the first object-or-array observation is the nested
	// primary, the rest are its extras.
	var nested []*value.Value
	for _, v := range p.Values {
		if v.Kind == value.Object || v.Kind == value.Array {
			nested = append(nested, v)
		}
	}
	if len(nested) > 0 {
		p.Nested = Analyze(nested[0], nested[1:])
	}
	return p
}

// enumCandidate applies the closed-set heuristic: every value is a string,
// more than one value and more than one distinct value were observed, at
// most 5 are distinct, and the distinct count stays strictly below 80% of
// the value count. The last guard keeps near-all-unique fields (names, IDs)
// from being flagged.
func enumCandidate(values []*value.Value) (bool, []string) {
	if len(values) < 2 {
		return false, nil
	}

	var distinct []string
	seen := make(map[string]bool)
	for _, v := range values {
		if v.Kind != value.String {
			return false, nil
		}
		if !seen[v.Str] {
			seen[v.Str] = true
			distinct = append(distinct, v.Str)
		}
	}

	if len(distinct) < 2 || len(distinct) > 5 {
		return false, nil
	}
	if float64(len(distinct)) >= 0.8*float64(len(values)) {
		return false, nil
	}
	return true, distinct
}
