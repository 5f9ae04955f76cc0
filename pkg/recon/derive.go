package recon

import (
	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// RowVerdict is the per-row outcome of the deriver, used for mismatch
// logging: the row's key, the overall verdict, and which sources and columns
// broke it.
type RowVerdict struct {
	Key               table.Value
	Match             bool
	MissingSources    []string
	MismatchedColumns []string
}

// Derivation holds the per-row derived series for one sheet: per-source
// presence, per-column match flags and the overall row verdict.
type Derivation struct {
	merged    *Merged
	keyColumn string
	sources   []string
	columns   []string

	presence map[string][]bool
	matchKey []bool
	colMatch map[string][]bool
	rowMatch []bool

	Matches    int
	Mismatches int
}

// Derive computes presence and match flags for every merged row.
//
// A source is present for a row when its set of non-missing normalized keys
// contains the row's key; Match_Key holds when every source is present. A
// comparison column matches when every source's value equals the first
// source's value, or when every source's value is missing. BronMatch is the
// conjunction of Match_Key and all column matches.
func Derive(merged *Merged, projected []SourceTable, keyColumn string, compareColumns []string) *Derivation {
	d := &Derivation{
		merged:    merged,
		keyColumn: keyColumn,
		sources:   make([]string, 0, len(projected)),
		columns:   compareColumns,
		presence:  make(map[string][]bool, len(projected)),
		colMatch:  make(map[string][]bool, len(compareColumns)),
	}

	keys := merged.Keys()
	n := merged.NumRows()

	d.matchKey = make([]bool, n)
	for i := range d.matchKey {
		d.matchKey[i] = true
	}
	for _, st := range projected {
		d.sources = append(d.sources, st.Label)

		keySet := make(map[table.Value]bool)
		for _, k := range st.Table.Column(models.KeyColumn) {
			if !k.IsMissing() {
				keySet[k] = true
			}
		}

		present := make([]bool, n)
		for r := 0; r < n; r++ {
			present[r] = !keys[r].IsMissing() && keySet[keys[r]]
			d.matchKey[r] = d.matchKey[r] && present[r]
		}
		d.presence[st.Label] = present
	}

	allColsMatch := make([]bool, n)
	for i := range allColsMatch {
		allColsMatch[i] = true
	}
	for _, col := range compareColumns {
		match := make([]bool, n)
		for r := 0; r < n; r++ {
			match[r] = d.columnMatches(r, col)
			allColsMatch[r] = allColsMatch[r] && match[r]
		}
		d.colMatch[col] = match
	}

	d.rowMatch = make([]bool, n)
	for r := 0; r < n; r++ {
		d.rowMatch[r] = d.matchKey[r] && allColsMatch[r]
		if d.rowMatch[r] {
			d.Matches++
		}
	}
	d.Mismatches = n - d.Matches
	return d
}

// columnMatches evaluates one comparison column for one row: equality against
// the first source as reference, with the all-missing fallback.
func (d *Derivation) columnMatches(row int, col string) bool {
	if len(d.sources) == 0 {
		return true
	}

	ref := d.merged.Cell(row, d.sources[0], col)
	equal := true
	allMissing := ref.IsMissing()
	for _, src := range d.sources[1:] {
		v := d.merged.Cell(row, src, col)
		equal = equal && ref.Equal(v)
		allMissing = allMissing && v.IsMissing()
	}
	return equal || allMissing
}

// Verdicts returns the per-row outcomes in merged row order.
func (d *Derivation) Verdicts() []RowVerdict {
	keys := d.merged.Keys()
	out := make([]RowVerdict, d.merged.NumRows())
	for r := range out {
		v := RowVerdict{Key: keys[r], Match: d.rowMatch[r]}
		if !v.Match {
			for _, src := range d.sources {
				if !d.presence[src][r] {
					v.MissingSources = append(v.MissingSources, src)
				}
			}
			for _, col := range d.columns {
				if !d.colMatch[col][r] {
					v.MismatchedColumns = append(v.MismatchedColumns, col)
				}
			}
		}
		out[r] = v
	}
	return out
}

func flag(b bool) table.Value {
	if b {
		return table.String(models.FlagYes)
	}
	return table.String(models.FlagNo)
}
