package recon

import (
	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// ReconciledTable assembles the derived series into the final table, in the
// fixed presentation order: Key, the Aanwezig_ columns in source order,
// Match_Key, BronMatch, the per-source echoed key columns, then per
// comparison column each source's value followed by that column's Match_
// flag. This ordering is a presentation contract.
func (d *Derivation) ReconciledTable() *table.Table {
	cols := []string{models.KeyColumn}
	for _, src := range d.sources {
		cols = append(cols, models.PresencePrefix+src)
	}
	cols = append(cols, models.MatchKeyColumn, models.BronMatchColumn)
	for _, src := range d.sources {
		cols = append(cols, src+"_"+models.KeyColumn)
	}
	for _, col := range d.columns {
		for _, src := range d.sources {
			cols = append(cols, src+"_"+col)
		}
		cols = append(cols, models.MatchPrefix+col)
	}

	out := table.New(cols...)
	keys := d.merged.Keys()
	for r := 0; r < d.merged.NumRows(); r++ {
		row := make([]table.Value, 0, len(cols))
		row = append(row, keys[r])
		for _, src := range d.sources {
			row = append(row, flag(d.presence[src][r]))
		}
		row = append(row, flag(d.matchKey[r]), flag(d.rowMatch[r]))
		for _, src := range d.sources {
			row = append(row, d.merged.Cell(r, src, d.keyColumn))
		}
		for _, col := range d.columns {
			for _, src := range d.sources {
				row = append(row, d.merged.Cell(r, src, col))
			}
			row = append(row, flag(d.colMatch[col][r]))
		}
		_ = out.AppendRow(row...)
	}
	return out
}
