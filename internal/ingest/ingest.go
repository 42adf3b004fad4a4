// Package ingest reads the raw inspection-history table into memory. It is
// the only component that touches the input file; everything downstream
// works on in-memory rows.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cirp/internal/models"
	"cirp/pkg/utils"
)

// Ingestion errors. Missing required columns are the one fatal data
// condition in the pipeline: proceeding without them would silently produce
// an empty report.
var (
	ErrEmptyInput        = errors.New("input table has no data rows")
	ErrMissingColumn     = errors.New("required column missing")
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// Required column names, after header sanitization.
const (
	ColumnID    = "id"
	ColumnClaim = "complaint_id"
	ColumnType  = "inspection_type"
	ColumnDate  = "inspection_date"
	ColumnZIP   = "property_zip_code"
)

var requiredColumns = []string{ColumnID, ColumnClaim, ColumnType, ColumnDate, ColumnZIP}

// Provenance records where the rows came from, for the report notes sheet.
type Provenance struct {
	Path   string
	SHA256 string
	Rows   int
}

type table struct {
	header []string
	rows   [][]string
}

// ReadFile loads the input table by extension: .csv as CSV, .xlsx/.xlsm as a
// workbook (sheet selects the worksheet; empty means the first one).
func ReadFile(path, sheet string) ([]models.RawEvent, Provenance, error) {
	var (
		t   table
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		t, err = readCSV(path)
	case ".xlsx", ".xlsm":
		t, err = readWorkbook(path, sheet)
	default:
		return nil, Provenance{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err != nil {
		return nil, Provenance{}, err
	}

	events, err := mapRows(t)
	if err != nil {
		return nil, Provenance{}, err
	}

	sum, err := checksum(path)
	if err != nil {
		return nil, Provenance{}, err
	}

	return events, Provenance{Path: path, SHA256: sum, Rows: len(events)}, nil
}

// mapRows sanitizes the header, resolves the required columns and converts
// every data row to a RawEvent. Short rows are padded with empty cells.
func mapRows(t table) ([]models.RawEvent, error) {
	index := make(map[string]int, len(t.header))
	for i, h := range t.header {
		index[utils.SnakeCase(h)] = i
	}

	var missing []string

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	if len(t.rows) == 0 {
		return nil, ErrEmptyInput
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}

		return row[i]
	}

	events := make([]models.RawEvent, 0, len(t.rows))
	for _, row := range t.rows {
		events = append(events, models.RawEvent{
			EventID:     cell(row, ColumnID),
			ComplaintID: cell(row, ColumnClaim),
			EventType:   cell(row, ColumnType),
			EventDate:   cell(row, ColumnDate),
			ZIPCode:     cell(row, ColumnZIP),
		})
	}

	return events, nil
}

// checksum computes the SHA-256 of the input file, recorded so a report can
// be traced back to the exact dataset snapshot that produced it.
func checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open input for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash input: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
