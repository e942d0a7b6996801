package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesKeyOrder(t *testing.T) {
	v, err := Decode([]byte(`{"zebra": 1, "apple": 2, "mango": {"b": 1, "a": 2}}`))
	require.NoError(t, err)
	require.Equal(t, []string{"zebra", "apple", "mango"}, v.Keys())

	mango, ok := v.Get("mango")
	require.True(t, ok)
	require.Equal(t, []string{"b", "a"}, mango.Keys())
}

func TestDecode_Scalars(t *testing.T) {
	tests := []struct {
		json string
		kind Kind
	}{
		{`null`, Null},
		{`true`, Bool},
		{`42`, Number},
		{`3.14`, Number},
		{`"hi"`, String},
		{`[]`, Array},
		{`{}`, Object},
	}
	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			v, err := Decode([]byte(tt.json))
			require.NoError(t, err)
			require.Equal(t, tt.kind, v.Kind)
		})
	}
}

func TestDecode_RejectsTrailingContent(t *testing.T) {
	_, err := Decode([]byte(`{"a": 1} {"b": 2}`))
	require.Error(t, err)
}

func TestIsInt(t *testing.T) {
	tests := []struct {
		num      float64
		expected bool
	}{
		{0, true},
		{1, true},
		{-7, true},
		{1.0, true},
		{1.5, false},
		{-3.14, false},
		{1e10, true},
	}
	for _, tt := range tests {
		v := NewNumber(tt.num)
		if v.IsInt() != tt.expected {
			t.Errorf("IsInt(%v) = %v, want %v", tt.num, v.IsInt(), tt.expected)
		}
	}
	if NewString("1").IsInt() {
		t.Error("IsInt must be false for non-numbers")
	}
}

func TestFromAny_SortsMapKeys(t *testing.T) {
	v := FromAny(map[string]any{"zebra": 1, "apple": true, "mango": "x"})
	require.Equal(t, []string{"apple", "mango", "zebra"}, v.Keys())
}

func TestToAnyRoundTrip(t *testing.T) {
	v, err := Decode([]byte(`{"id": 1, "tags": ["a", "b"], "nested": {"ok": true, "gone": null}}`))
	require.NoError(t, err)

	back := FromAny(v.ToAny())
	require.Equal(t, Object, back.Kind)

	id, ok := back.Get("id")
	require.True(t, ok)
	require.Equal(t, float64(1), id.Num)

	tags, ok := back.Get("tags")
	require.True(t, ok)
	require.Len(t, tags.Items, 2)

	nested, ok := back.Get("nested")
	require.True(t, ok)
	gone, ok := nested.Get("gone")
	require.True(t, ok)
	require.Equal(t, Null, gone.Kind)
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		Null:   "null",
		Bool:   "boolean",
		Number: "number",
		String: "string",
		Array:  "array",
		Object: "object",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
