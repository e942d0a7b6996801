package query

import (
	"context"
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

func TestSelect_Identity(t *testing.T) {
	primary, extras, err := Select(context.Background(), ".", mustDecode(t, `{"a": 1}`), nil)
	require.NoError(t, err)
	require.Empty(t, extras)

	a, ok := primary.Get("a")
	require.True(t, ok)
	require.Equal(t, float64(1), a.Num)
}

func TestSelect_FansOutIterator(t *testing.T) {
	primary, extras, err := Select(context.Background(), ".items[]",
		mustDecode(t, `{"items": [{"id": 1}, {"id": 2}, {"id": 3}]}`), nil)
	require.NoError(t, err)
	require.Len(t, extras, 2)

	id, _ := primary.Get("id")
	require.Equal(t, float64(1), id.Num)
}

func TestSelect_AppliesToExtras(t *testing.T) {
	primary, extras, err := Select(context.Background(), ".payload",
		mustDecode(t, `{"payload": {"a": 1}}`),
		[]*value.Value{mustDecode(t, `{"payload": {"a": 2}}`)})
	require.NoError(t, err)
	require.Len(t, extras, 1)

	a, _ := primary.Get("a")
	require.Equal(t, float64(1), a.Num)
}

func TestSelect_Errors(t *testing.T) {
	_, _, err := Select(context.Background(), ".[invalid", mustDecode(t, `{}`), nil)
	require.Error(t, err)

	// Zero outputs is an error, not an empty sample set.
	_, _, err = Select(context.Background(), ".items[]", mustDecode(t, `{"items": []}`), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "produced no output")
}
