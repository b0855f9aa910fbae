package domain

import (
	"slices"
)

// Row is a single record keyed by column name. Missing keys read as "".
type Row map[string]string

// Table is a column-ordered, string-typed view of a CSV file. Loading and
// cleaning work on tables so optional or oddly named columns survive until
// they are normalised.
type Table struct {
	Columns []string
	Rows    []Row
}

func NewTable(columns []string) *Table {
	return &Table{Columns: slices.Clone(columns)}
}

func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Clone returns a deep copy; rows can be modified without touching t.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = cloneRow(row)
	}
	return out
}

// RenameColumn renames from to to in place. It is a no-op when from is absent.
func (t *Table) RenameColumn(from, to string) {
	idx := slices.Index(t.Columns, from)
	if idx < 0 {
		return
	}
	t.Columns[idx] = to
	for _, row := range t.Rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
}

// SetColumn computes a value for every row and stores it under name,
// appending the column if it is new.
func (t *Table) SetColumn(name string, fn func(Row) (string, error)) error {
	for _, row := range t.Rows {
		v, err := fn(row)
		if err != nil {
			return err
		}
		row[name] = v
	}
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
	return nil
}

// Filter returns a new table with copies of the rows for which keep is true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := NewTable(t.Columns)
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, cloneRow(row))
		}
	}
	return out
}

func cloneRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
