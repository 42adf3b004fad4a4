package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook loads one worksheet of an Excel workbook as header + data
// rows. An empty sheet name selects the workbook's first sheet.
func readWorkbook(path, sheet string) (table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return table{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return table{}, ErrEmptyInput
	}

	return table{header: rows[0], rows: rows[1:]}, nil
}
