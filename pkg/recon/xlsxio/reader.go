// Package xlsxio provides the spreadsheet collaborators around the
// reconciliation engine: source loading, sheet-configuration reading, source
// discovery, folder bundling and report writing, all via excelize (CSV via
// encoding/csv). Cells are always loaded as text; blank cells load as the
// missing sentinel.
package xlsxio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// Loader loads source sheets from disk. It implements the loader seam the
// orchestrator consumes.
type Loader struct{}

// LoadSheet reads one sheet of a source file as a table. For .csv files the
// sheet name is ignored and the file itself is the table. The first row is
// the header. On failure an empty table is returned along with the error;
// the caller decides whether that aborts anything.
func (Loader) LoadSheet(path, sheetName string) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loadCSV(path)
	}
	return loadWorkbookSheet(path, sheetName)
}

func loadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.New(), err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return table.New(), err
	}
	return fromRows(rows), nil
}

func loadWorkbookSheet(path, sheetName string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table.New(), err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return table.New(), err
	}
	return fromRows(rows), nil
}

// loadFirstSheet reads the first sheet of a workbook, or the whole file for
// .csv. Used when bundling folders, where sheet names are not meaningful.
func loadFirstSheet(path string) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loadCSV(path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table.New(), err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.New(), nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table.New(), err
	}
	return fromRows(rows), nil
}

// fromRows builds a table from raw string rows; the first row is the header.
// Rows shorter than the header are padded with missing values.
func fromRows(rows [][]string) *table.Table {
	if len(rows) == 0 {
		return table.New()
	}
	header := rows[0]
	t := table.New(header...)
	for _, row := range rows[1:] {
		vals := make([]table.Value, len(header))
		for i := range header {
			if i < len(row) && row[i] != "" {
				vals[i] = table.String(row[i])
			}
		}
		_ = t.AppendRow(vals...)
	}
	return t
}
