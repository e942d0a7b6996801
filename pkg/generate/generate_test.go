package generate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge-mcp/pkg/types"
)

func gen(t *testing.T, req *types.GenerateRequest) *types.GenerateResult {
	t.Helper()
	result, err := Generate(context.Background(), req)
	require.NoError(t, err)
	return result
}

func TestGenerate_BasicInterface(t *testing.T) {
	result := gen(t, &types.GenerateRequest{
		Input:  `{"id":1,"name":"John","address":{"city":"NY","zip":12345},"orders":[{"orderId":1,"amount":200}]}`,
		Output: types.OutputInterface,
	})

	require.Equal(t, types.FormatJSON, result.Format)
	require.Equal(t, 1, result.SampleCount)
	require.Contains(t, result.Output, "interface Root {")
	require.Contains(t, result.Output, "address: Address;")
	require.Contains(t, result.Output, "orders: Order[];")
}

func TestGenerate_DefaultName(t *testing.T) {
	result := gen(t, &types.GenerateRequest{Input: `{"a":1}`, Output: types.OutputType})
	require.Contains(t, result.Output, "type Root = {")
}

func TestGenerate_AdvancedJSONLines(t *testing.T) {
	result := gen(t, &types.GenerateRequest{
		Input:  "{\"id\":1,\"tag\":\"a\"}\n{\"id\":2}",
		Output: types.OutputAdvancedInterface,
	})

	require.Equal(t, types.FormatJSONLines, result.Format)
	require.Equal(t, 2, result.SampleCount)
	require.Contains(t, result.Output, "tag?: string;")
	// One distinct value: never an enum.
	require.NotContains(t, result.Output, "enum Tag")
}

func TestGenerate_RepairEquivalence(t *testing.T) {
	malformed := gen(t, &types.GenerateRequest{
		Input:  `{id: 1, name: 'x', tags: ['a','b',],}`,
		Format: types.FormatJSON,
		Output: types.OutputAdvancedInterface,
	})
	clean := gen(t, &types.GenerateRequest{
		Input:  `{"id": 1, "name": "x", "tags": ["a", "b"]}`,
		Format: types.FormatJSON,
		Output: types.OutputAdvancedInterface,
	})
	require.Equal(t, clean.Output, malformed.Output)
}

func TestGenerate_CSVRowsAreSamples(t *testing.T) {
	result := gen(t, &types.GenerateRequest{
		Input:  "id,name\n1,John\n2,Ana\n",
		Output: types.OutputAdvancedInterface,
	})

	require.Equal(t, types.FormatCSV, result.Format)
	require.Equal(t, 2, result.SampleCount)
	// Cells stay strings all the way through.
	require.Contains(t, result.Output, "id: string;")
}

func TestGenerate_FirstSampleBackends(t *testing.T) {
	// jsonlines: the non-advanced backends see only the first row.
	input := "{\"id\":1}\n{\"id\":2,\"extra\":true}"

	zod := gen(t, &types.GenerateRequest{Input: input, Output: types.OutputZod})
	require.Contains(t, zod.Output, "id: z.number().int(),")
	require.NotContains(t, zod.Output, "extra")

	js := gen(t, &types.GenerateRequest{Input: input, Output: types.OutputJSONSchema})
	require.NotContains(t, js.Output, "extra")

	gql := gen(t, &types.GenerateRequest{Input: input, Output: types.OutputGraphQL})
	require.Contains(t, gql.Output, "type Root {")
	require.NotContains(t, gql.Output, "extra")
}

func TestGenerate_ExplicitFormatBypassesDetection(t *testing.T) {
	// A single JSON object would auto-detect as json; force yaml and the
	// yaml parser must still handle it (YAML is a JSON superset).
	result := gen(t, &types.GenerateRequest{
		Input:  `{"a": 1}`,
		Format: types.FormatYAML,
		Output: types.OutputInterface,
	})
	require.Equal(t, types.FormatYAML, result.Format)
}

func TestGenerate_Select(t *testing.T) {
	result := gen(t, &types.GenerateRequest{
		Input:  `{"data": {"items": [{"id": 1}, {"id": 2, "tag": "x"}]}}`,
		Output: types.OutputAdvancedInterface,
		Select: ".data.items[]",
	})

	require.Equal(t, 2, result.SampleCount)
	require.Contains(t, result.Output, "tag?: string;")
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(context.Background(), &types.GenerateRequest{
		Input:  `{"a":1}`,
		Output: "protobuf",
	})
	require.Error(t, err)

	_, err = Generate(context.Background(), &types.GenerateRequest{
		Input:  `{"a":1}`,
		Format: "toml",
		Output: types.OutputInterface,
	})
	require.Error(t, err)

	_, err = Generate(context.Background(), &types.GenerateRequest{
		Input:  `{"unclosed": `,
		Format: types.FormatJSON,
		Output: types.OutputInterface,
	})
	require.Error(t, err)

	// GraphQL cannot render a non-object sample.
	_, err = Generate(context.Background(), &types.GenerateRequest{
		Input:  `[1, 2]`,
		Format: types.FormatJSON,
		Output: types.OutputGraphQL,
	})
	require.Error(t, err)
}
