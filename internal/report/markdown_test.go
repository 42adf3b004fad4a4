package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cirp/internal/metrics"
	"cirp/internal/models"
)

func TestTableAlignsColumns(t *testing.T) {
	got := Table(
		[]string{"month", "n"},
		[][]string{
			{"2023-03", "1"},
			{"2023-04", "12"},
		},
	)

	expected := `| month   | n   |
| ------- | --- |
| 2023-03 | 1   |
| 2023-04 | 12  |
`

	assert.Equal(t, expected, got)
}

func TestTableHandlesShortRows(t *testing.T) {
	got := Table(
		[]string{"a", "b"},
		[][]string{{"only"}},
	)

	expected := `| a    | b   |
| ---- | --- |
| only |     |
`

	assert.Equal(t, expected, got)
}

func TestRenderSummaries(t *testing.T) {
	res := metrics.Result{
		DaysToResolution: []metrics.ResolutionRow{
			{Month: "2023-03", MeanDays: 9.0, Resolved: 1},
		},
		ResolutionStatus: []metrics.StatusRow{
			{Month: "2023-03", Resolved: 1, PctResolved: 50.0, Unresolved: 1, PctUnresolved: 50.0, Total: 2},
		},
	}

	got := RenderSummaries(res)

	assert.Contains(t, got, "## Days to resolution")
	assert.Contains(t, got, "## Resolution status")
	assert.Contains(t, got, "| 2023-03")
	assert.Contains(t, got, "9.0")
	assert.Contains(t, got, "50.0")
}

func TestRenderTally(t *testing.T) {
	buckets := map[models.Bucket]int{
		models.BucketProblemComplaintID: 2,
		models.BucketLateStartDate:      1,
	}
	removed := models.RemovedCounts{
		models.RemovedNoEndDate: 3,
	}

	got := RenderTally(buckets, removed)

	assert.Contains(t, got, "problem_complaint_id")
	assert.Contains(t, got, "late_start_date")
	assert.Contains(t, got, string(models.RemovedNoEndDate))
	assert.Contains(t, got, "| 3")
	assert.NotContains(t, got, string(models.RemovedBeforeCutoff), "absent reasons are omitted")
}
