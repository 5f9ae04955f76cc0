package xlsxio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
)

// ErrNoValidSheets indicates the configuration workbook defined no usable
// sheet at all. Fatal for the whole run.
var ErrNoValidSheets = errors.New("no valid sheet configuration found")

// Marker values in the configuration workbook.
const (
	keyMarker  = "key"
	bronMarker = "bron"
)

// FindValidationConfig locates the single configuration workbook in the
// validation directory. Zero or multiple candidates are an error.
func FindValidationConfig(dir string) (string, error) {
	candidates, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return "", err
	}
	if len(candidates) != 1 {
		return "", fmt.Errorf("found %d configuration workbooks in %s; expected exactly 1", len(candidates), dir)
	}
	return candidates[0], nil
}

// ReadSheetConfigs reads the per-sheet comparison configuration. Each sheet's
// first row lists the comparison columns (blank, "nan" and bron-marker cells
// excluded); the second row designates the key column with a "key" marker.
// Malformed sheets are skipped with a logged error; no valid sheet at all is
// fatal.
func ReadSheetConfigs(path string, log *zap.Logger) ([]models.SheetConfig, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var configs []models.SheetConfig
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Warn("failed to read configuration sheet",
				zap.String("sheet", sheet), zap.Error(err))
			continue
		}
		cfg, ok := parseSheetConfig(sheet, rows, log)
		if ok {
			configs = append(configs, cfg)
		}
	}

	if len(configs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoValidSheets, filepath.Base(path))
	}
	return configs, nil
}

func parseSheetConfig(sheet string, rows [][]string, log *zap.Logger) (models.SheetConfig, bool) {
	if len(rows) == 0 {
		return models.SheetConfig{}, false
	}

	header := rows[0]
	var markers []string
	if len(rows) > 1 {
		markers = rows[1]
	}

	var columns []string
	for _, cell := range header {
		c := strings.TrimSpace(cell)
		if c == "" || strings.EqualFold(c, "nan") || strings.EqualFold(c, bronMarker) {
			continue
		}
		columns = append(columns, c)
	}
	if len(columns) == 0 {
		return models.SheetConfig{}, false
	}

	keyColumn := findKeyColumn(header, markers)
	if keyColumn == "" {
		log.Error("no key marker found in configuration sheet; define the key in the validation workbook",
			zap.String("sheet", sheet))
		return models.SheetConfig{}, false
	}

	return models.SheetConfig{Sheet: sheet, Columns: columns, KeyColumn: keyColumn}, true
}

// findKeyColumn returns the header cell above the first "key" marker in the
// second row, or "" when no marker designates a named column.
func findKeyColumn(header, markers []string) string {
	for i, marker := range markers {
		if !strings.EqualFold(strings.TrimSpace(marker), keyMarker) {
			continue
		}
		if i < len(header) {
			if candidate := strings.TrimSpace(header[i]); candidate != "" {
				return candidate
			}
		}
	}
	return ""
}
