package xlsxio

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// Report sheet names in the test-results workbook.
const (
	duplicatesSheet = "dubbele records"
	summarySheet    = "Samenvatting"
	dashboardSheet  = "Dashboard"
	logsSheet       = "Logs"
)

// ReportWriter accumulates report sheets in one workbook and saves it on
// Close. It is the single output resource held open across a whole run.
type ReportWriter struct {
	f       *excelize.File
	path    string
	log     *zap.Logger
	written []string
}

// NewReportWriter creates a writer for the workbook at path. Nothing is
// written to disk until Close.
func NewReportWriter(path string, log *zap.Logger) *ReportWriter {
	return &ReportWriter{f: excelize.NewFile(), path: path, log: log}
}

// WriteSheet writes a reconciled table as one sheet. The internal BronMatch
// column is dropped from this view; an empty table becomes an info sheet.
// Styling failures are logged, never fatal.
func (w *ReportWriter) WriteSheet(name string, t *table.Table) error {
	if t.Empty() {
		return w.setInfo(name, infoNoData)
	}

	view := t
	if t.HasColumn(models.BronMatchColumn) {
		var keep []string
		for _, c := range t.Columns() {
			if c != models.BronMatchColumn {
				keep = append(keep, c)
			}
		}
		selected, err := t.Select(keep...)
		if err != nil {
			return err
		}
		view = selected
	}

	if err := setSheetTable(w.f, name, view); err != nil {
		return err
	}
	w.written = append(w.written, name)

	if err := styleSheet(w.f, name, view); err != nil {
		w.log.Warn("styling failed", zap.String("sheet", name), zap.Error(err))
	}
	return nil
}

// WriteDuplicates writes the duplicate-key report, sorted by sheet, source
// and key (stable).
func (w *ReportWriter) WriteDuplicates(records []models.DuplicateRecord) error {
	if len(records) == 0 {
		return w.setInfo(duplicatesSheet, infoNoDuplicates)
	}

	sorted := append([]models.DuplicateRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Sheet != b.Sheet {
			return a.Sheet < b.Sheet
		}
		if a.Bron != b.Bron {
			return a.Bron < b.Bron
		}
		return a.Key < b.Key
	})

	rows := make([][]interface{}, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, []interface{}{r.Sheet, r.Bron, r.Key, r.Aantal})
	}
	return w.setRecords(duplicatesSheet, []interface{}{"Sheet", "Bron", "Key", "Aantal"}, rows)
}

// WriteSummary writes the per-sheet match summary, with a placeholder row
// when no sheet produced one.
func (w *ReportWriter) WriteSummary(records []models.SummaryRecord) error {
	header := []interface{}{"Sheet", "Totaal", "Matches", "Mismatches"}
	if len(records) == 0 {
		return w.setRecords(summarySheet, header, [][]interface{}{{"<geen>", 0, 0, 0}})
	}
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{r.Sheet, r.Totaal, r.Matches, r.Mismatches})
	}
	return w.setRecords(summarySheet, header, rows)
}

// WriteDashboard writes the per (sheet, source) statistics.
func (w *ReportWriter) WriteDashboard(records []models.DashboardRecord) error {
	if len(records) == 0 {
		return w.setRecords(dashboardSheet,
			[]interface{}{"Sheet", "Bron", "Rijen", "Kolommen"},
			[][]interface{}{{"<geen>", "<geen>", 0, 0}})
	}

	header := []interface{}{
		"Sheet", "Bron", "Rijen", "Kolommen", "KeyKolom",
		"Key_NonNull", "Key_Null", "Key_Uniek", "Key_Duplicaten",
	}
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.Sheet, r.Bron, r.Rijen, r.Kolommen, r.KeyKolom,
			r.KeyNonNull, r.KeyNull, r.KeyUniek, r.KeyDuplicaten,
		})
	}
	return w.setRecords(dashboardSheet, header, rows)
}

// WriteLogs writes the captured log lines. The header is written even when
// nothing was captured.
func (w *ReportWriter) WriteLogs(records []models.LogRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{r.Tijd, r.Niveau, r.Bericht})
	}
	return w.setRecords(logsSheet, []interface{}{"Tijd", "Niveau", "Bericht"}, rows)
}

// Close saves the workbook, creating the output directory when needed. The
// unused default sheet is removed first.
func (w *ReportWriter) Close() error {
	defer w.f.Close()

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}
	dropDefaultSheet(w.f, w.written...)
	return w.f.SaveAs(w.path)
}

func (w *ReportWriter) setInfo(sheet, message string) error {
	if err := setInfoSheet(w.f, sheet, message); err != nil {
		return err
	}
	w.written = append(w.written, sheet)
	return nil
}

func (w *ReportWriter) setRecords(sheet string, header []interface{}, rows [][]interface{}) error {
	if _, err := w.f.NewSheet(sheet); err != nil {
		return err
	}
	if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	w.written = append(w.written, sheet)
	return nil
}

// setSheetTable writes a table to a workbook sheet, header row first.
// Missing cells stay blank.
func setSheetTable(f *excelize.File, sheet string, t *table.Table) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	cols := t.Columns()
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r := 0; r < t.NumRows(); r++ {
		vals := make([]interface{}, len(cols))
		for i, c := range cols {
			if v := t.Cell(r, c); !v.IsMissing() {
				vals[i] = v.Str
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return err
		}
	}
	return nil
}

// setInfoSheet writes a single informational message as a one-row sheet.
func setInfoSheet(f *excelize.File, sheet, message string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Info"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	row := []interface{}{message}
	return f.SetSheetRow(sheet, "A2", &row)
}

// dropDefaultSheet removes the excelize default sheet unless a report was
// written under that name.
func dropDefaultSheet(f *excelize.File, written ...string) {
	const defaultSheet = "Sheet1"
	for _, name := range written {
		if name == defaultSheet {
			return
		}
	}
	if len(f.GetSheetList()) > 1 {
		_ = f.DeleteSheet(defaultSheet)
	}
}

// Path returns the destination of the workbook.
func (w *ReportWriter) Path() string {
	return w.path
}
