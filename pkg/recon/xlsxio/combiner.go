package xlsxio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Informational messages written to report sheets when data is absent.
const (
	infoNoData       = "Geen data gevonden in een of meer bronnen of configuratie leeg."
	infoNoDuplicates = "Geen dubbele sleutels gevonden in de aangeleverde bronnen."
	infoNoInputFiles = "Geen inputbestanden gevonden in map"
)

// CombineFolder merges every .xlsx and .csv file in a folder into one
// workbook at outPath, one sheet per file (first sheet only for workbooks
// with several). Sheet names are the file stems, capped at the Excel limit.
// An unreadable or empty file becomes an info sheet rather than an error.
func CombineFolder(folder, outPath string) error {
	files := bundleInputFiles(folder, outPath)

	out := excelize.NewFile()
	defer out.Close()

	if len(files) == 0 {
		if err := setInfoSheet(out, "Info", infoNoInputFiles); err != nil {
			return err
		}
	}
	for _, file := range files {
		sheet := sheetNameFor(file)
		t, err := loadFirstSheet(file)
		if err != nil || t.Empty() {
			if err := setInfoSheet(out, sheet, fmt.Sprintf("Geen data of leesfout voor %s", filepath.Base(file))); err != nil {
				return err
			}
			continue
		}
		if err := setSheetTable(out, sheet, t); err != nil {
			return err
		}
	}

	dropDefaultSheet(out)
	return out.SaveAs(outPath)
}

// bundleInputFiles collects the folder's workbooks (excluding a previously
// generated bundle at outPath) followed by its CSV files, each sorted.
func bundleInputFiles(folder, outPath string) []string {
	var files []string
	for _, p := range globSorted(folder, "*.xlsx") {
		if strings.EqualFold(filepath.Base(p), filepath.Base(outPath)) {
			continue
		}
		files = append(files, p)
	}
	files = append(files, globSorted(folder, "*.csv")...)
	return files
}

// sheetNameFor derives a sheet name from a file name, capped at 31 runes
// (the Excel sheet name limit).
func sheetNameFor(path string) string {
	name := []rune(stem(path))
	if len(name) > 31 {
		name = name[:31]
	}
	return string(name)
}
