package recon

import (
	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// SourceTable pairs a source label with its table for one sheet. The slice
// order of SourceTables is the configured source order.
type SourceTable struct {
	Label string
	Table *table.Table
}

// Project reduces one source's raw table to the key column plus the
// comparison columns that actually exist in the source, and appends the
// normalized Key column.
//
// An empty raw table projects to the full configured shape with zero rows. A
// raw table without the key column gets it synthesized all-missing, so the
// source still participates in the outer join. Configured columns absent from
// the source are omitted, never an error; they surface as missing values
// after the merge.
func Project(raw *table.Table, keyColumn string, compareColumns []string) *table.Table {
	src := raw
	if raw.Empty() {
		src = table.New(append([]string{keyColumn}, compareColumns...)...)
	} else if !raw.HasColumn(keyColumn) {
		src = raw.Clone()
		_ = src.WithColumn(keyColumn, make([]table.Value, src.NumRows()))
	}

	keep := []string{keyColumn}
	for _, c := range compareColumns {
		if c != keyColumn && src.HasColumn(c) {
			keep = append(keep, c)
		}
	}
	projected, err := src.Select(keep...)
	if err != nil {
		// keep only holds columns verified to exist; selecting the bare key
		// column keeps the source joinable.
		projected = table.New(keyColumn)
		for i := 0; i < src.NumRows(); i++ {
			_ = projected.AppendRow(src.Cell(i, keyColumn))
		}
	}

	rawKeys := projected.Column(keyColumn)
	if err := projected.WithColumn(models.KeyColumn, normalizeColumn(rawKeys)); err != nil {
		// A source column literally named "Key" collides with the normalized
		// key column. Fall back to the raw key values rather than failing
		// the sheet.
		_ = projected.SetColumn(models.KeyColumn, rawKeys)
	}
	return projected
}
