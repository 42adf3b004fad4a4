package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cirp/internal/ingest"
	"cirp/internal/metrics"
	"cirp/internal/models"
	"cirp/internal/validator"
	"cirp/pkg/dates"
)

func TestWriteSummaryWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	res := metrics.Result{
		DaysToResolution: []metrics.ResolutionRow{
			{Month: "2023-03", MeanDays: 9.0, Resolved: 1},
		},
		ResolutionStatus: []metrics.StatusRow{
			{Month: "2023-03", Resolved: 1, PctResolved: 100.0, Unresolved: 0, PctUnresolved: 0.0, Total: 1},
			{Month: "2023-04", Resolved: 0, PctResolved: 0.0, Unresolved: 1, PctUnresolved: 100.0, Total: 1},
		},
	}

	require.NoError(t, WriteSummaryWorkbook(path, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetDaysToResolution)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"month_resolved", "mean_days_to_resolution", "n_resolved"}, rows[0])
	assert.Equal(t, "2023-03", rows[1][0])
	assert.Equal(t, "9", rows[1][1])

	rows, err = f.GetRows(SheetResolutionStatus)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2023-04", rows[2][0])
	assert.Equal(t, "100", rows[2][4])
}

func TestWriteExceptionsWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exceptions.xlsx")

	exc := validator.Exceptions{
		ProblemComplaintID: []models.Event{
			{EventID: "6", EventType: "complaint", Date: dates.MustParse("2023-02-01")},
		},
		MissingEndDate: []models.LifecycleRecord{
			{
				ComplaintID: "200",
				Dates:       map[string]time.Time{"complaint#01": dates.MustParse("2023-04-05")},
				ZIPs:        []string{"60622"},
			},
		},
	}

	removed := models.RemovedCounts{models.RemovedNoEndDate: 1}
	prov := ingest.Provenance{Path: "inspections.csv", SHA256: "abc123", Rows: 8}

	require.NoError(t, WriteExceptionsWorkbook(path, exc, removed, prov))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Every bucket gets a sheet, populated or not, plus the notes sheet.
	names := f.GetSheetList()
	assert.Len(t, names, len(models.BucketOrder)+1)
	assert.Contains(t, names, SheetNotes)

	rows, err := f.GetRows(string(models.BucketMissingEndDate))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "200", rows[1][0])
	assert.Contains(t, rows[1][2], "complaint#01=2023-04-05")

	rows, err = f.GetRows(string(models.BucketProblemComplaintID))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "6", rows[1][0])

	rows, err = f.GetRows(SheetNotes)
	require.NoError(t, err)
	assert.Greater(t, len(rows), len(models.BucketOrder))
}
