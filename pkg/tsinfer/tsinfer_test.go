package tsinfer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge-mcp/pkg/value"
)

func mustDecode(t *testing.T, text string) *value.Value {
	t.Helper()
	v, err := value.Decode([]byte(text))
	require.NoError(t, err)
	return v
}

func TestInfer_NestedSample(t *testing.T) {
	sample := mustDecode(t, `{"id":1,"name":"John","address":{"city":"NY","zip":12345},"orders":[{"orderId":1,"amount":200}]}`)

	out, err := Infer(context.Background(), sample, "Root", false)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "interface Root {"))
	require.Contains(t, out, "id: number;")
	require.Contains(t, out, "name: string;")
	require.Contains(t, out, "address: Address;")
	require.Contains(t, out, "orders: Order[];")
	require.Contains(t, out, "interface Address {")
	require.Contains(t, out, "city: string;")
	require.Contains(t, out, "zip: number;")
	require.Contains(t, out, "interface Order {")
	require.Contains(t, out, "orderId: number;")
	require.Contains(t, out, "amount: number;")
}

func TestInfer_AliasKeyword(t *testing.T) {
	out, err := Infer(context.Background(), mustDecode(t, `{"id": 1}`), "Root", true)
	require.NoError(t, err)
	require.Contains(t, out, "type Root = {")
	require.Contains(t, out, "};")
}

func TestInfer_ShapeDeduplication(t *testing.T) {
	// billing and shipping share a structural signature: one shared type.
	sample := mustDecode(t, `{"billing":{"city":"NY","zip":1},"shipping":{"city":"LA","zip":2}}`)

	out, err := Infer(context.Background(), sample, "Root", false)
	require.NoError(t, err)
	require.Contains(t, out, "billing: Billing;")
	require.Contains(t, out, "shipping: Billing;")
	require.Equal(t, 1, strings.Count(out, "city: string;"))
}

func TestInfer_NameCollisionSuffix(t *testing.T) {
	// Two different shapes both deriving the name "Item" get numeric suffixes.
	sample := mustDecode(t, `{"item":{"a":1},"items":[{"b":"x"}]}`)

	out, err := Infer(context.Background(), sample, "Root", false)
	require.NoError(t, err)
	require.Contains(t, out, "item: Item;")
	require.Contains(t, out, "items: Item2[];")
	require.Contains(t, out, "interface Item {")
	require.Contains(t, out, "interface Item2 {")
}

func TestInfer_Roots(t *testing.T) {
	out, err := Infer(context.Background(), mustDecode(t, `"hi"`), "Root", false)
	require.NoError(t, err)
	require.Equal(t, "type Root = string;\n", out)

	out, err = Infer(context.Background(), mustDecode(t, `[{"a":1}]`), "Roots", false)
	require.NoError(t, err)
	require.Contains(t, out, "type Roots = Root[];")
	require.Contains(t, out, "interface Root {")

	out, err = Infer(context.Background(), mustDecode(t, `[]`), "Empty", false)
	require.NoError(t, err)
	require.Equal(t, "type Empty = any[];\n", out)
}

func TestInfer_RootDefinitionFirst(t *testing.T) {
	sample := mustDecode(t, `{"a":{"x":1},"b":{"y":"s"}}`)
	out, err := Infer(context.Background(), sample, "Root", false)
	require.NoError(t, err)

	rootIdx := strings.Index(out, "interface Root {")
	aIdx := strings.Index(out, "interface A {")
	bIdx := strings.Index(out, "interface B {")
	require.GreaterOrEqual(t, aIdx, 0)
	require.GreaterOrEqual(t, bIdx, 0)
	require.Less(t, rootIdx, aIdx)
	require.Less(t, aIdx, bIdx)
}

func TestInfer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Infer(ctx, mustDecode(t, `{"a":1}`), "Root", false)
	require.Error(t, err)
}
