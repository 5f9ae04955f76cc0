package recon

import (
	"go.uber.org/zap"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
)

// FindDuplicates scans every source's raw table for normalized key values
// occurring more than once and reports one record per (sheet, source, key).
// Missing keys are excluded from duplicate counting; when a source holds any,
// an informational line is logged. Runs independently of the merge pipeline.
func FindDuplicates(sheet string, sources []SourceTable, keyColumn string, log *zap.Logger) []models.DuplicateRecord {
	var records []models.DuplicateRecord
	for _, st := range sources {
		records = append(records, findSourceDuplicates(sheet, st, keyColumn, log)...)
	}
	return records
}

func findSourceDuplicates(sheet string, st SourceTable, keyColumn string, log *zap.Logger) []models.DuplicateRecord {
	if st.Table.Empty() || !st.Table.HasColumn(keyColumn) {
		return nil
	}

	keys := normalizeColumn(st.Table.Column(keyColumn))

	missing := 0
	counts := make(map[string]int)
	var order []string
	for _, k := range keys {
		if k.IsMissing() {
			missing++
			continue
		}
		if counts[k.Str] == 0 {
			order = append(order, k.Str)
		}
		counts[k.Str]++
	}

	if missing > 0 {
		log.Info("lege keys niet meegeteld bij duplicaten",
			zap.String("sheet", sheet),
			zap.String("bron", st.Label),
			zap.Int("aantal", missing))
	}

	var records []models.DuplicateRecord
	for _, k := range order {
		if counts[k] > 1 {
			records = append(records, models.DuplicateRecord{
				Sheet:  sheet,
				Bron:   st.Label,
				Key:    k,
				Aantal: counts[k],
			})
		}
	}
	return records
}
