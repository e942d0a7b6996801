package emit

import (
	"fmt"
	"strings"

	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// Zod renders a runtime-validation schema for one concrete sample. Every
// object field is required: this backend deliberately consumes a single
// sample and ignores the multi-sample optionality, union, enum, and pattern
// analysis. Integral numbers map to z.number().int().
func Zod(sample *value.Value, name string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "const %sSchema = ", name)
	writeZod(&b, sample, 0)
	b.WriteString(";\n")
	return b.String(), nil
}

func writeZod(b *strings.Builder, v *value.Value, depth int) {
	switch v.Kind {
	case value.Null:
		b.WriteString("z.null()")
	case value.Bool:
		b.WriteString("z.boolean()")
	case value.Number:
		if v.IsInt() {
			b.WriteString("z.number().int()")
		} else {
			b.WriteString("z.number()")
		}
	case value.String:
		b.WriteString("z.string()")
	case value.Array:
		if len(v.Items) == 0 {
			b.WriteString("z.array(z.unknown())")
			return
		}
		b.WriteString("z.array(")
		writeZod(b, v.Items[0], depth)
		b.WriteString(")")
	case value.Object:
		indent := strings.Repeat("  ", depth+1)
		b.WriteString("z.object({\n")
		for _, key := range v.Keys() {
			field, _ := v.Get(key)
			b.WriteString(indent)
			b.WriteString(propertyKey(key))
			b.WriteString(": ")
			writeZod(b, field, depth+1)
			b.WriteString(",\n")
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString("})")
	}
}
