// Package table provides the in-memory table abstraction used throughout the
// reconciliation pipeline: named columns over rows of nullable text cells.
package table

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Value is a single nullable text cell. The zero value is the missing
// sentinel, which is distinct from an empty string.
type Value struct {
	Str   string
	Valid bool
}

// Missing is the explicit missing-value sentinel.
var Missing = Value{}

// String wraps a string in a present Value.
func String(s string) Value {
	return Value{Str: s, Valid: true}
}

// IsMissing reports whether the value is the missing sentinel.
func (v Value) IsMissing() bool {
	return !v.Valid
}

// Get returns the underlying string, or "" when missing.
func (v Value) Get() string {
	if !v.Valid {
		return ""
	}
	return v.Str
}

// Equal reports whether two values are present and hold the same string.
// A missing value never equals anything, not even another missing value.
func (v Value) Equal(other Value) bool {
	return v.Valid && other.Valid && v.Str == other.Str
}

// Table is an ordered set of named columns over rows of Values.
// Column order is preserved from construction; rows are row-major.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]Value
}

// New creates an empty table with the given columns.
func New(cols ...string) *Table {
	t := &Table{
		cols:  append([]string(nil), cols...),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range t.cols {
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow appends one row. The number of values must match the number of
// columns.
func (t *Table) AppendRow(vals ...Value) error {
	if len(vals) != len(t.cols) {
		return fmt.Errorf("table: row has %d values, table has %d columns", len(vals), len(t.cols))
	}
	t.rows = append(t.rows, append([]Value(nil), vals...))
	return nil
}

// Cell returns the value at the given row and column, or Missing when the
// column does not exist.
func (t *Table) Cell(row int, name string) Value {
	i, ok := t.index[name]
	if !ok || row < 0 || row >= len(t.rows) {
		return Missing
	}
	return t.rows[row][i]
}

// Column returns all values of the named column in row order, or nil when
// the column does not exist.
func (t *Table) Column(name string) []Value {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	out := make([]Value, len(t.rows))
	for r := range t.rows {
		out[r] = t.rows[r][i]
	}
	return out
}

// Select returns a new table containing only the given columns, in the given
// order. Every requested column must exist.
func (t *Table) Select(names ...string) (*Table, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		j, ok := t.index[n]
		if !ok {
			return nil, fmt.Errorf("table: column %q not found", n)
		}
		idx[i] = j
	}
	out := New(names...)
	for _, row := range t.rows {
		vals := make([]Value, len(idx))
		for i, j := range idx {
			vals[i] = row[j]
		}
		out.rows = append(out.rows, vals)
	}
	return out, nil
}

// WithColumn appends a new column with the given values. The column name must
// not already exist and the value count must match the row count.
func (t *Table) WithColumn(name string, vals []Value) error {
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("table: column %q already exists", name)
	}
	if len(vals) != len(t.rows) {
		return fmt.Errorf("table: column %q has %d values, table has %d rows", name, len(vals), len(t.rows))
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, name)
	for r := range t.rows {
		t.rows[r] = append(t.rows[r], vals[r])
	}
	return nil
}

// SetColumn replaces the values of an existing column.
func (t *Table) SetColumn(name string, vals []Value) error {
	i, ok := t.index[name]
	if !ok {
		return fmt.Errorf("table: column %q not found", name)
	}
	if len(vals) != len(t.rows) {
		return fmt.Errorf("table: column %q has %d values, table has %d rows", name, len(vals), len(t.rows))
	}
	for r := range t.rows {
		t.rows[r][i] = vals[r]
	}
	return nil
}

// Rename renames a column in place. Renaming a missing column is a no-op.
func (t *Table) Rename(old, new string) {
	i, ok := t.index[old]
	if !ok {
		return
	}
	delete(t.index, old)
	t.cols[i] = new
	t.index[new] = i
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.cols...)
	if err := deepcopy.Copy(&out.rows, t.rows); err != nil {
		// Value and its containers are plain copyable types; keep the
		// original rows rather than fail.
		out.rows = t.rows
	}
	return out
}
