package emit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge-mcp/pkg/types"
)

func TestGraphQL_ScalarMapping(t *testing.T) {
	sample := mustDecode(t, `{"id": 1, "price": 9.99, "name": "x", "ok": true, "gone": null}`)

	out, err := GraphQL(sample, "Product")
	require.NoError(t, err)
	require.Contains(t, out, "type Product {")
	require.Contains(t, out, "id: Int\n")
	require.Contains(t, out, "price: Float\n")
	require.Contains(t, out, "name: String\n")
	require.Contains(t, out, "ok: Boolean\n")
	require.Contains(t, out, "gone: String\n")
}

func TestGraphQL_ListsAndNesting(t *testing.T) {
	sample := mustDecode(t, `{"tags": ["a"], "empty": [], "address": {"city": "NY"}}`)

	out, err := GraphQL(sample, "Root")
	require.NoError(t, err)
	require.Contains(t, out, "tags: [String]\n")
	require.Contains(t, out, "empty: [String]\n")
	require.Contains(t, out, "address: Address\n")
	require.Contains(t, out, "type Address {")

	// The root type definition comes first.
	require.True(t, strings.HasPrefix(out, "type Root {"))
}

func TestGraphQL_FieldNameSanitization(t *testing.T) {
	sample := mustDecode(t, `{"first-name": "Ada", "2fa": true, "a b": 1, "ok": "y"}`)

	out, err := GraphQL(sample, "Person")
	require.NoError(t, err)
	require.Contains(t, out, "first_name: String\n")
	require.Contains(t, out, "_2fa: Boolean\n")
	require.Contains(t, out, "a_b: Int\n")
	require.Contains(t, out, "ok: String\n")
	require.NotContains(t, out, "first-name")
}

func TestGQLFieldName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"name", "name"},
		{"_internal", "_internal"},
		{"first-name", "first_name"},
		{"2fa", "_2fa"},
		{"a b c", "a_b_c"},
		{"---", "field"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, gqlFieldName(tt.in), "key %q", tt.in)
	}
}

func TestGraphQL_NonObjectRoot(t *testing.T) {
	_, err := GraphQL(mustDecode(t, `[1, 2]`), "Root")
	require.Error(t, err)

	var eerr *types.EmissionError
	require.True(t, errors.As(err, &eerr))
	require.Equal(t, types.OutputGraphQL, eerr.Backend)
}
