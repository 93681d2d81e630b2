package store

import (
	"bytes"
	"encoding/json"
)

// Result is the outcome of a single statement execution: either a
// column-ordered row set (reads) or an affected-row count (writes and DDL).
// A statement fully succeeds or fails; there are no partial results.
type Result struct {
	Columns  []string
	Rows     [][]any
	Affected int64
	Mutation bool
}

// Text renders the result as a JSON array: one object per row with keys in
// column order, or a single {"affected_rows": N} object for mutations.
func (r *Result) Text() string {
	var buf bytes.Buffer
	buf.WriteByte('[')

	if r.Mutation {
		buf.WriteString(`{"affected_rows": `)
		count, _ := json.Marshal(r.Affected)
		buf.Write(count)
		buf.WriteByte('}')
		buf.WriteByte(']')
		return buf.String()
	}

	for i, row := range r.Rows {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteByte('{')
		for j, column := range r.Columns {
			if j > 0 {
				buf.WriteString(", ")
			}
			key, _ := json.Marshal(column)
			buf.Write(key)
			buf.WriteString(": ")
			value, _ := json.Marshal(row[j])
			buf.Write(value)
		}
		buf.WriteByte('}')
	}

	buf.WriteByte(']')
	return buf.String()
}

// Mappings materializes the row set as column-name-to-value maps. Mutations
// yield a single {"affected_rows": N} mapping, mirroring Text.
func (r *Result) Mappings() []map[string]any {
	if r.Mutation {
		return []map[string]any{{"affected_rows": r.Affected}}
	}

	mappings := make([]map[string]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		m := make(map[string]any, len(r.Columns))
		for i, column := range r.Columns {
			m[column] = row[i]
		}
		mappings = append(mappings, m)
	}
	return mappings
}
