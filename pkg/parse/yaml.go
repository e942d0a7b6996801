package parse

import (
	"gopkg.in/yaml.v3"

	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// parseYAML decodes a single YAML document into a normalized tree, keeping
// mapping key order via the yaml.Node representation. A failed YAML parse
// falls back to the repaired-JSON path.
func parseYAML(text string) (*value.Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return repairFallback(text, types.FormatYAML, err)
	}

	v, err := value.FromYAMLNode(&node)
	if err != nil {
		return repairFallback(text, types.FormatYAML, err)
	}
	return v, nil
}
