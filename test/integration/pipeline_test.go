// Package integration exercises the full path from input file to report
// workbooks, the same way the report binary runs it.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cirp/internal/config"
	"cirp/internal/ingest"
	"cirp/internal/models"
	"cirp/internal/pipeline"
	"cirp/internal/report"
	"cirp/pkg/dates"
)

const inputCSV = `ID,Complaint ID,Inspection Type,Inspection Date,Property Zip Code
1,100,complaint,2023-03-01,60647
2,100,desk approval,2023-03-10,60647
3,200,complaint,2023-04-05,60622
4,300,field,2023-01-01,60601
5,300,complaint,2023-01-05,60601
6,,complaint,2023-02-01,
7,400,complaint,2024-06-15,60610
8,100,complaint,2023-03-01 08:30:00,60647
`

const configTemplate = `
dataset:
  start_date: 2016-01-01
  export_date: 2024-05-31
  metrics_start_date: 2019-01-01
input:
  path: %INPUT%
output:
  summary_path: %SUMMARY%
  exceptions_path: %EXCEPTIONS%
`

func TestFullRunFromCSVToWorkbooks(t *testing.T) {
	dir := t.TempDir()

	inputPath := filepath.Join(dir, "inspections.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte(inputCSV), 0644))

	summaryPath := filepath.Join(dir, "summary.xlsx")
	exceptionsPath := filepath.Join(dir, "exceptions.xlsx")

	yaml := configTemplate
	for from, to := range map[string]string{
		"%INPUT%":      inputPath,
		"%SUMMARY%":    summaryPath,
		"%EXCEPTIONS%": exceptionsPath,
	} {
		yaml = strings.ReplaceAll(yaml, from, to)
	}

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	raw, prov, err := ingest.ReadFile(cfg.Input.Path, cfg.Input.Sheet)
	require.NoError(t, err)
	require.Len(t, raw, 8)

	result := pipeline.Run(raw, cfg.Window(), cfg.CategorySet())

	// Row 8 duplicates row 1 after timestamp truncation.
	assert.Equal(t, 1, result.Normalized.Removed.DuplicateTriples)

	require.NoError(t, report.WriteSummaryWorkbook(cfg.Output.SummaryPath, result.Metrics))
	require.NoError(t, report.WriteExceptionsWorkbook(cfg.Output.ExceptionsPath, result.Exceptions, result.RemovedCounts(), prov))

	// Summary workbook round-trips.
	f, err := excelize.OpenFile(summaryPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetDaysToResolution)
	require.NoError(t, err)
	require.Len(t, rows, 2, "only complaint 100 resolved")
	assert.Equal(t, []string{"2023-03", "9", "1"}, rows[1])

	rows, err = f.GetRows(report.SheetResolutionStatus)
	require.NoError(t, err)
	require.Len(t, rows, 4, "complaints opened in three distinct months")

	// Exceptions workbook has every bucket sheet.
	xf, err := excelize.OpenFile(exceptionsPath)
	require.NoError(t, err)
	defer xf.Close()

	for _, bucket := range models.BucketOrder {
		idx, err := xf.GetSheetIndex(string(bucket))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0, "missing sheet %s", bucket)
	}

	lateRows, err := xf.GetRows(string(models.BucketLateStartDate))
	require.NoError(t, err)
	require.Len(t, lateRows, 2)
	assert.Equal(t, "300", lateRows[1][0])
}

func TestRerunProducesIdenticalSummaries(t *testing.T) {
	dir := t.TempDir()

	inputPath := filepath.Join(dir, "inspections.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte(inputCSV), 0644))

	raw, _, err := ingest.ReadFile(inputPath, "")
	require.NoError(t, err)

	window := models.DatasetWindow{
		StartDate:        dates.MustParse("2016-01-01"),
		ExportDate:       dates.MustParse("2024-05-31"),
		MetricsStartDate: dates.MustParse("2019-01-01"),
	}

	first := pipeline.Run(raw, window, models.DefaultCategories())
	second := pipeline.Run(raw, window, models.DefaultCategories())

	assert.Equal(t, first.Metrics.DaysToResolution, second.Metrics.DaysToResolution)
	assert.Equal(t, first.Metrics.ResolutionStatus, second.Metrics.ResolutionStatus)
	assert.Equal(t, first.Exceptions.Counts(), second.Exceptions.Counts())
}
