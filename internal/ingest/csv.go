package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
)

// readCSV loads a CSV file as header + data rows.
func readCSV(path string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are a data-quality issue, not a parse error

	records, err := r.ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("failed to parse CSV: %w", err)
	}

	if len(records) == 0 {
		return table{}, ErrEmptyInput
	}

	return table{header: records[0], rows: records[1:]}, nil
}
