package tabular

// Table is an ordered set of named columns over string cells. The empty
// string is the missing-value marker; cells never carry typed values,
// coercion happens at the point of use.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// New returns an empty table with the given columns.
func New(columns ...string) Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return Table{Columns: cols, Rows: [][]string{}}
}

// Len returns the row count.
func (t Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the position of name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all cells of the named column, or nil if absent.
func (t Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, cell(r, idx))
	}
	return out
}

// Cell returns row i of the named column; "" when out of range or the
// column is absent.
func (t Table) Cell(i int, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return ""
	}
	return cell(t.Rows[i], idx)
}

// Append adds a row, padding or truncating it to the column count.
func (t *Table) Append(row []string) {
	fixed := make([]string, len(t.Columns))
	for i := range fixed {
		fixed[i] = cell(row, i)
	}
	t.Rows = append(t.Rows, fixed)
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := New(t.Columns...)
	out.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = make([]string, len(r))
		copy(out.Rows[i], r)
	}
	return out
}

// Filter returns the rows for which keep reports true.
func (t Table) Filter(keep func(row []string) bool) Table {
	out := New(t.Columns...)
	for _, r := range t.Rows {
		if keep(r) {
			out.Append(r)
		}
	}
	return out
}

// cell guards against short rows read from hand-edited files.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
