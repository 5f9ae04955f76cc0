package recon

import (
	"github.com/steelneuf/DWH---Test/pkg/recon/models"
)

// DashboardRecords computes per-source table and key-quality statistics for
// one sheet: row/column counts and, over the raw key column, the non-null,
// null, unique and duplicated-row counts. Computed independently of the merge.
func DashboardRecords(sheet string, sources []SourceTable, keyColumn string) []models.DashboardRecord {
	records := make([]models.DashboardRecord, 0, len(sources))
	for _, st := range sources {
		rec := models.DashboardRecord{
			Sheet:    sheet,
			Bron:     st.Label,
			Rijen:    st.Table.NumRows(),
			KeyKolom: keyColumn,
		}
		if !st.Table.Empty() {
			rec.Kolommen = st.Table.NumCols()
		}
		fillKeyStats(&rec, st, keyColumn)
		records = append(records, rec)
	}
	return records
}

// fillKeyStats computes key statistics over the raw, unnormalized key values.
func fillKeyStats(rec *models.DashboardRecord, st SourceTable, keyColumn string) {
	if !st.Table.HasColumn(keyColumn) {
		rec.KeyNull = st.Table.NumRows()
		return
	}

	counts := make(map[string]int)
	for _, v := range st.Table.Column(keyColumn) {
		if v.IsMissing() {
			rec.KeyNull++
			continue
		}
		rec.KeyNonNull++
		counts[v.Str]++
	}

	rec.KeyUniek = len(counts)
	for _, n := range counts {
		if n > 1 {
			rec.KeyDuplicaten += n
		}
	}
}
