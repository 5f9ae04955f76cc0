package recon

import (
	"strings"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// Result is the outcome of comparing one sheet across all sources.
type Result struct {
	// Table is the reconciled table in the fixed column order.
	Table *table.Table
	// Matches counts rows where BronMatch holds; Mismatches is the rest.
	Matches    int
	Mismatches int
	// Verdicts carries the per-row outcomes for mismatch logging.
	Verdicts []RowVerdict
}

// Compare runs the full pipeline for one sheet: project every source, outer
// join on the normalized key, derive presence and match flags, and order the
// output columns. The key column never participates as a comparison column.
func Compare(sources []SourceTable, cfg models.SheetConfig) *Result {
	key := strings.TrimSpace(cfg.KeyColumn)
	cols := make([]string, 0, len(cfg.Columns))
	for _, c := range cfg.Columns {
		if c := strings.TrimSpace(c); c != "" && c != key {
			cols = append(cols, c)
		}
	}

	projected := make([]SourceTable, len(sources))
	for i, st := range sources {
		projected[i] = SourceTable{Label: st.Label, Table: Project(st.Table, key, cols)}
	}

	merged := Merge(projected)
	d := Derive(merged, projected, key, cols)

	return &Result{
		Table:      d.ReconciledTable(),
		Matches:    d.Matches,
		Mismatches: d.Mismatches,
		Verdicts:   d.Verdicts(),
	}
}
