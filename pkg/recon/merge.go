package recon

import (
	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// ColumnRef addresses one source's column in the merged table by structured
// key instead of by parsing synthesized "<column>_<source>" names.
type ColumnRef struct {
	Source string
	Column string
}

// Merged is the full outer join of all projected tables on the normalized
// Key column. Every non-Key column is renamed "<column>_<source>"; the
// structured refs index maps (source, original column) back to the renamed
// column.
type Merged struct {
	tbl     *table.Table
	sources []string
	refs    map[ColumnRef]string
}

// Merge outer-joins the projected tables on Key, in source order.
//
// Every distinct key from any source appears exactly once; columns a source
// does not contribute hold Missing for that row. Duplicate keys within one
// source occupy a single merged row (first occurrence wins); rows with a
// missing key group into one shared row. Zero sources yield an empty table
// with only the Key column.
func Merge(projected []SourceTable) *Merged {
	m := &Merged{refs: make(map[ColumnRef]string)}

	cols := []string{models.KeyColumn}
	for _, st := range projected {
		m.sources = append(m.sources, st.Label)
		for _, c := range st.Table.Columns() {
			if c == models.KeyColumn {
				continue
			}
			renamed := c + "_" + st.Label
			m.refs[ColumnRef{Source: st.Label, Column: c}] = renamed
			cols = append(cols, renamed)
		}
	}

	colIndex := make(map[string]int, len(cols))
	for i, c := range cols {
		colIndex[c] = i
	}

	keyIndex := make(map[table.Value]int)
	var rows [][]table.Value
	for _, st := range projected {
		keys := st.Table.Column(models.KeyColumn)
		seen := make(map[table.Value]bool, len(keys))
		for r := range keys {
			k := keys[r]
			if seen[k] {
				continue
			}
			seen[k] = true

			ri, ok := keyIndex[k]
			if !ok {
				ri = len(rows)
				keyIndex[k] = ri
				row := make([]table.Value, len(cols))
				row[0] = k
				rows = append(rows, row)
			}
			for _, c := range st.Table.Columns() {
				if c == models.KeyColumn {
					continue
				}
				rows[ri][colIndex[c+"_"+st.Label]] = st.Table.Cell(r, c)
			}
		}
	}

	m.tbl = table.New(cols...)
	for _, row := range rows {
		_ = m.tbl.AppendRow(row...)
	}
	return m
}

// Table returns the merged wide table.
func (m *Merged) Table() *table.Table {
	return m.tbl
}

// NumRows returns the number of distinct keys.
func (m *Merged) NumRows() int {
	return m.tbl.NumRows()
}

// Keys returns the shared Key column.
func (m *Merged) Keys() []table.Value {
	return m.tbl.Column(models.KeyColumn)
}

// Cell returns the merged value of one source's column for a row, or Missing
// when the source never contributed that column.
func (m *Merged) Cell(row int, source, column string) table.Value {
	name, ok := m.refs[ColumnRef{Source: source, Column: column}]
	if !ok {
		return table.Missing
	}
	return m.tbl.Cell(row, name)
}
