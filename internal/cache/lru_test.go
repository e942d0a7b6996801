package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge-mcp/pkg/types"
)

func TestResultCache(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	result := &types.GenerateResult{Output: "interface Root {}"}
	c.Put("a", result)

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, result, got)

	// Evicts least recently used beyond capacity.
	c.Put("b", result)
	c.Put("c", result)
	_, ok = c.Get("a")
	require.False(t, ok)
	require.Equal(t, 2, c.Len())
}

func TestKey(t *testing.T) {
	base := &types.GenerateRequest{
		Name:   "Root",
		Input:  `{"a":1}`,
		Output: types.OutputInterface,
	}

	require.Equal(t, Key(base), Key(base))

	differentInput := *base
	differentInput.Input = `{"a":2}`
	require.NotEqual(t, Key(base), Key(&differentInput))

	differentOutput := *base
	differentOutput.Output = types.OutputZod
	require.NotEqual(t, Key(base), Key(&differentOutput))

	opts := types.SmartDefaults()
	withOptions := *base
	withOptions.Options = &opts
	require.NotEqual(t, Key(base), Key(&withOptions))
}
