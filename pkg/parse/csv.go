package parse

import (
	"encoding/csv"
	"strings"

	"github.com/typeforge/typeforge-mcp/pkg/types"
	"github.com/typeforge/typeforge-mcp/pkg/value"
)

// parseCSV reads header-rowed CSV into an array of row objects. The first
// row names the fields; each data row becomes an object of string cells.
// Cells stay strings here: any coercion is a downstream concern, never the
// parser's. Blank lines are skipped.
func parseCSV(text string) (*value.Value, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return repairFallback(text, types.FormatCSV, err)
	}
	if len(records) == 0 {
		return nil, &types.ParseError{Format: types.FormatCSV, Msg: "empty input"}
	}
	if len(records) < 2 {
		return nil, &types.ParseError{Format: types.FormatCSV, Msg: "header row but no data rows"}
	}

	headers := records[0]
	arr := &value.Value{Kind: value.Array, Items: make([]*value.Value, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := value.NewObject()
		for i, name := range headers {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			row.Set(name, value.NewString(cell))
		}
		arr.Items = append(arr.Items, row)
	}
	return arr, nil
}
