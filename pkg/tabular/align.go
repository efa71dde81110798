package tabular

import "strings"

// Align reshapes t to exactly the given schema: input columns whose
// name matches a schema column case-insensitively (ignoring surrounding
// whitespace) are renamed to the canonical spelling, schema columns
// missing from the input are added with empty cells, and the result
// carries the schema's columns in the schema's order. Unmatched input
// columns are dropped. Align is idempotent.
func Align(t Table, schema []string) Table {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

	// Canonical lookup built once per call; first schema entry wins on
	// normalized collisions, matching schema declaration order.
	canon := map[string]int{}
	for i, s := range schema {
		if _, ok := canon[norm(s)]; !ok {
			canon[norm(s)] = i
		}
	}

	// src[i] = input column index feeding schema column i, or -1.
	src := make([]int, len(schema))
	for i := range src {
		src[i] = -1
	}
	for j, c := range t.Columns {
		if i, ok := canon[norm(c)]; ok && src[i] == -1 {
			src[i] = j
		}
	}

	out := New(schema...)
	for _, r := range t.Rows {
		row := make([]string, len(schema))
		for i, j := range src {
			row[i] = cell(r, j)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}
