package value

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromYAMLNode converts a decoded YAML node into a Value, preserving mapping
// key order. Documents are unwrapped and aliases are resolved; scalar tags
// decide between null, boolean, number, and string.
func FromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, fmt.Errorf("empty YAML document")
		}
		return FromYAMLNode(n.Content[0])

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("unresolved YAML alias %q", n.Value)
		}
		return FromYAMLNode(n.Alias)

	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := FromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(n.Content[i].Value, val)
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := &Value{Kind: Array, Items: make([]*Value, 0, len(n.Content))}
		for _, c := range n.Content {
			item, err := FromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, item)
		}
		return arr, nil

	case yaml.ScalarNode:
		return fromYAMLScalar(n), nil
	}
	return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
}

func fromYAMLScalar(n *yaml.Node) *Value {
	switch n.Tag {
	case "!!null":
		return NewNull()
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return NewBool(b)
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return NewNumber(float64(i))
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return NewNumber(f)
		}
	}
	// Unrecognized or unparseable scalars stay strings.
	return NewString(n.Value)
}
