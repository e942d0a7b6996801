package tools

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge-mcp/internal/cache"
	"github.com/typeforge/typeforge-mcp/internal/config"
	"github.com/typeforge/typeforge-mcp/pkg/types"
)

func testDeps(t *testing.T) *Deps {
	t.Helper()
	c, err := cache.New(8)
	require.NoError(t, err)
	return &Deps{
		Config: &config.Config{
			CacheMaxItems:   8,
			MaxInputBytes:   1024,
			DefaultTypeName: "Root",
		},
		Cache: c,
	}
}

func TestBuildRequest(t *testing.T) {
	d := testDeps(t)

	req, err := buildRequest(d, GenerateArgs{Input: `{"a":1}`}, types.OutputInterface)
	require.NoError(t, err)
	require.Equal(t, "Root", req.Name)
	require.Equal(t, types.InputFormat(""), req.Format)
	require.Equal(t, types.OutputInterface, req.Output)

	req, err = buildRequest(d, GenerateArgs{Input: `{}`, Name: "User", Format: "yaml"}, types.OutputZod)
	require.NoError(t, err)
	require.Equal(t, "User", req.Name)
	require.Equal(t, types.FormatYAML, req.Format)
}

func TestBuildRequest_Rejections(t *testing.T) {
	d := testDeps(t)

	_, err := buildRequest(d, GenerateArgs{}, types.OutputInterface)
	require.ErrorContains(t, err, "input is required")

	_, err = buildRequest(d, GenerateArgs{Input: `{}`, Name: "Not A Name"}, types.OutputInterface)
	require.ErrorContains(t, err, "invalid type name")

	_, err = buildRequest(d, GenerateArgs{Input: `{}`, Format: "toml"}, types.OutputInterface)
	require.ErrorContains(t, err, "unknown input format")

	big := make([]byte, 2048)
	for i := range big {
		big[i] = 'a'
	}
	_, err = buildRequest(d, GenerateArgs{Input: string(big)}, types.OutputInterface)
	require.ErrorContains(t, err, "exceeds")
}
