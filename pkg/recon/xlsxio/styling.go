package xlsxio

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// styleSheet applies the basic reconciled-sheet formatting: a bold header row
// and a grey fill on the meta columns (Key, the presence columns and
// Match_Key).
func styleSheet(f *excelize.File, sheet string, t *table.Table) error {
	if t.Empty() {
		return nil
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	grey, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	boldGrey, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	cols := t.Columns()
	lastHeader, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, bold); err != nil {
		return err
	}

	for i, col := range cols {
		if !isMetaColumn(col) {
			continue
		}
		head, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, head, head, boldGrey); err != nil {
			return err
		}
		if t.NumRows() == 0 {
			continue
		}
		first, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(i+1, t.NumRows()+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, grey); err != nil {
			return err
		}
	}
	return nil
}

func isMetaColumn(name string) bool {
	return name == models.KeyColumn ||
		name == models.MatchKeyColumn ||
		strings.HasPrefix(name, models.PresencePrefix)
}
