package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const csvFixture = `ID,Complaint ID,Inspection Type,Inspection Date,Property Zip Code
1,100,complaint,2023-03-01,60647
2,100,desk approval,2023-03-10,60647
3,200,complaint,2023-04-05,"60622 (rear)"
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inspections.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestReadFileCSV(t *testing.T) {
	events, prov, err := ReadFile(writeCSV(t, csvFixture), "")
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, "1", events[0].EventID)
	assert.Equal(t, "100", events[0].ComplaintID)
	assert.Equal(t, "complaint", events[0].EventType)
	assert.Equal(t, "2023-03-01", events[0].EventDate)
	assert.Equal(t, "60622 (rear)", events[2].ZIPCode, "cells pass through raw; coercion is the normalizer's job")

	assert.Equal(t, 3, prov.Rows)
	assert.Len(t, prov.SHA256, 64)
}

func TestReadFileChecksumIsStable(t *testing.T) {
	path := writeCSV(t, csvFixture)

	_, first, err := ReadFile(path, "")
	require.NoError(t, err)

	_, second, err := ReadFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, first.SHA256, second.SHA256)
}

func TestReadFileMissingColumns(t *testing.T) {
	path := writeCSV(t, "ID,Inspection Type\n1,complaint\n")

	_, _, err := ReadFile(path, "")
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "complaint_id")
	assert.Contains(t, err.Error(), "inspection_date")
	assert.Contains(t, err.Error(), "property_zip_code")
}

func TestReadFileHeaderOnly(t *testing.T) {
	path := writeCSV(t, "ID,Complaint ID,Inspection Type,Inspection Date,Property Zip Code\n")

	_, _, err := ReadFile(path, "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestReadFileShortRowsPadded(t *testing.T) {
	path := writeCSV(t, "ID,Complaint ID,Inspection Type,Inspection Date,Property Zip Code\n1,100,complaint\n")

	events, _, err := ReadFile(path, "")
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "complaint", events[0].EventType)
	assert.Empty(t, events[0].EventDate)
	assert.Empty(t, events[0].ZIPCode)
}

func TestReadFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspections.parquet")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, _, err := ReadFile(path, "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadFileMissingFile(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.Error(t, err)
}

func TestReadFileWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspections.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"ID", "Complaint ID", "Inspection Type", "Inspection Date", "Property Zip Code"},
		{"1", "100", "complaint", "2023-03-01", "60647"},
		{"2", "100", "desk approval", "2023-03-10", "60647"},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	events, prov, err := ReadFile(path, "")
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "desk approval", events[1].EventType)
	assert.Equal(t, "2023-03-10", events[1].EventDate)
	assert.Equal(t, 2, prov.Rows)
}
