package detect

import (
	"testing"

	"github.com/typeforge/typeforge-mcp/pkg/types"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.InputFormat
	}{
		// jsonlines: every non-blank line is a brace-delimited object
		{"jsonlines_two_records", "{\"id\":1}\n{\"id\":2}", types.FormatJSONLines},
		{"jsonlines_blank_lines_skipped", "{\"id\":1}\n\n{\"id\":2}\n", types.FormatJSONLines},
		{"single_object_not_jsonlines", `{"id":1}`, types.FormatJSON},

		// csv: comma counts of the first two lines within one
		{"csv_header_and_rows", "id,name\n1,John\n2,Ana", types.FormatCSV},
		{"csv_ragged_by_one", "a,b,c\n1,2\n", types.FormatCSV},
		{"csv_single_line_rejected", "id,name", types.FormatJSON},

		// yaml: colon plus structural hints
		{"yaml_leading_key", "name: John\nage: 30", types.FormatYAML},
		{"yaml_list", "items:\n- one\n- two", types.FormatYAML},
		{"yaml_document_separator", "---\nname: x", types.FormatYAML},

		// json5: comments, trailing commas, bare keys
		{"json5_line_comment", "{\"id\": 1} // trailing", types.FormatJSON5},
		{"json5_block_comment", "/* hi */ {\"id\": 1}", types.FormatJSON5},
		{"json5_trailing_comma", `{"id": 1,}`, types.FormatJSON5},
		{"json5_bare_key", `{id: 1}`, types.FormatJSON5},

		// default
		{"plain_json", `{"id": 1, "name": "John"}`, types.FormatJSON},
		{"json_array", `[1,2,3]`, types.FormatJSON},
		{"scalar", `42`, types.FormatJSON},
		{"empty_string", ``, types.FormatJSON},
		{"garbage", "\x00\x01\x02", types.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			if got != tt.expected {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.expected)
			}
			if !got.Valid() {
				t.Errorf("Detect(%q) returned an invalid format %q", tt.text, got)
			}
		})
	}
}

func TestDetect_OrderMatters(t *testing.T) {
	// A multi-line set of objects also contains commas and colons; the
	// jsonlines rule must win over csv, yaml, and json5.
	text := "{\"a\": 1, \"b\": 2}\n{\"a\": 3, \"b\": 4}"
	if got := Detect(text); got != types.FormatJSONLines {
		t.Errorf("Detect = %q, want jsonlines", got)
	}
}
