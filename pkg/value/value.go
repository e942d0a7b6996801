// Package value defines the normalized data tree that every input format
// parses into: a tagged variant over null, booleans, numbers, strings,
// arrays, and objects with ordered fields. All downstream analysis and
// emission consumes this representation, so new backends are forced to
// handle every shape exhaustively.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind discriminates the variants of a Value.
type Kind int

// Value kinds.
const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}

// Value is one node of a normalized data tree. Only the fields matching Kind
// are meaningful; the rest stay zero. Values are created fresh per parse and
// never mutated after hand-off.
type Value struct {
	Kind Kind

	BoolVal bool
	Num     float64
	Str     string
	Items   []*Value
	Fields  *orderedmap.OrderedMap[string, *Value]
}

// NewNull returns a null Value.
func NewNull() *Value { return &Value{Kind: Null} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{Kind: Bool, BoolVal: b} }

// NewNumber returns a numeric Value.
func NewNumber(f float64) *Value { return &Value{Kind: Number, Num: f} }

// NewString returns a string Value.
func NewString(s string) *Value { return &Value{Kind: String, Str: s} }

// NewArray returns an array Value over the given items.
func NewArray(items ...*Value) *Value { return &Value{Kind: Array, Items: items} }

// NewObject returns an empty object Value with ordered fields.
func NewObject() *Value {
	return &Value{Kind: Object, Fields: orderedmap.New[string, *Value]()}
}

// Set adds or replaces an object field, preserving insertion order.
func (v *Value) Set(key string, val *Value) {
	v.Fields.Set(key, val)
}

// Get returns the field value for key. The second result is false for
// missing keys and for non-object values.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind != Object || v.Fields == nil {
		return nil, false
	}
	return v.Fields.Get(key)
}

// Keys returns the object field names in insertion order.
func (v *Value) Keys() []string {
	if v.Kind != Object || v.Fields == nil {
		return nil
	}
	keys := make([]string, 0, v.Fields.Len())
	for pair := v.Fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of elements for arrays and fields for objects.
func (v *Value) Len() int {
	switch v.Kind {
	case Array:
		return len(v.Items)
	case Object:
		if v.Fields == nil {
			return 0
		}
		return v.Fields.Len()
	}
	return 0
}

// IsInt reports whether a Number holds an integral value.
func (v *Value) IsInt() bool {
	return v.Kind == Number &&
		math.Trunc(v.Num) == v.Num && !math.IsInf(v.Num, 0) && !math.IsNaN(v.Num)
}

// Decode parses a single JSON value, preserving object key order. Trailing
// non-whitespace content after the first value is an error.
func Decode(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected content after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return NewString(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return NewNumber(f), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := &Value{Kind: Array}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, item)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// FromAny converts a decoded any-tree (map[string]any, []any, scalars) into
// a Value. Map iteration order is undefined in Go, so object keys are sorted
// for determinism.
func FromAny(v any) *Value {
	switch val := v.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(val)
	case float64:
		return NewNumber(val)
	case float32:
		return NewNumber(float64(val))
	case int:
		return NewNumber(float64(val))
	case int64:
		return NewNumber(float64(val))
	case *big.Int:
		f, _ := new(big.Float).SetInt(val).Float64()
		return NewNumber(f)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return NewString(val.String())
		}
		return NewNumber(f)
	case string:
		return NewString(val)
	case []any:
		arr := &Value{Kind: Array, Items: make([]*Value, 0, len(val))}
		for _, item := range val {
			arr.Items = append(arr.Items, FromAny(item))
		}
		return arr
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromAny(val[k]))
		}
		return obj
	}
	return NewString(fmt.Sprintf("%v", v))
}

// ToAny converts a Value into the map[string]any representation used by jq
// evaluation. Object key order is lost on this path.
func (v *Value) ToAny() any {
	switch v.Kind {
	case Null:
		return nil
	case Bool:
		return v.BoolVal
	case Number:
		return v.Num
	case String:
		return v.Str
	case Array:
		items := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, item.ToAny())
		}
		return items
	case Object:
		obj := make(map[string]any, v.Len())
		for pair := v.Fields.Oldest(); pair != nil; pair = pair.Next() {
			obj[pair.Key] = pair.Value.ToAny()
		}
		return obj
	}
	return nil
}
