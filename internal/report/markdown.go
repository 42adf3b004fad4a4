package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"cirp/internal/metrics"
	"cirp/internal/models"
)

// Table renders a markdown table with columns padded to their display
// widths, so mixed-width content still lines up in a terminal.
func Table(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Column widths from display width, minimum 3 for the separator dashes.
	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = 3
	}

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	measure(headers)

	for _, row := range rows {
		measure(row)
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for i := 0; i < colCount; i++ {
			content := ""
			if i < len(row) {
				content = row[i]
			}

			sb.WriteString(" ")
			sb.WriteString(content)

			if padding := colWidths[i] - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(headers)

	sb.WriteString("|")

	for i := 0; i < colCount; i++ {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", colWidths[i]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

// RenderSummaries renders both monthly summaries as markdown sections.
func RenderSummaries(res metrics.Result) string {
	var sb strings.Builder

	sb.WriteString("## Days to resolution\n\n")

	rows := make([][]string, 0, len(res.DaysToResolution))
	for _, row := range res.DaysToResolution {
		rows = append(rows, []string{
			row.Month,
			fmt.Sprintf("%.1f", row.MeanDays),
			fmt.Sprintf("%d", row.Resolved),
		})
	}

	sb.WriteString(Table([]string{"month_resolved", "mean_days_to_resolution", "n_resolved"}, rows))

	sb.WriteString("\n## Resolution status\n\n")

	rows = rows[:0]
	for _, row := range res.ResolutionStatus {
		rows = append(rows, []string{
			row.Month,
			fmt.Sprintf("%d", row.Resolved),
			fmt.Sprintf("%.1f", row.PctResolved),
			fmt.Sprintf("%d", row.Unresolved),
			fmt.Sprintf("%.1f", row.PctUnresolved),
			fmt.Sprintf("%d", row.Total),
		})
	}

	sb.WriteString(Table(
		[]string{"month_started", "n_resolved", "pct_resolved", "n_unresolved", "pct_unresolved", "n_total"},
		rows,
	))

	return sb.String()
}

// RenderTally renders exception-bucket and removed-reason counts as one
// markdown table.
func RenderTally(buckets map[models.Bucket]int, removed models.RemovedCounts) string {
	var rows [][]string

	for _, bucket := range models.BucketOrder {
		rows = append(rows, []string{"exception", string(bucket), fmt.Sprintf("%d", buckets[bucket])})
	}

	// Fixed reason order keeps consecutive runs diffable.
	reasonOrder := []models.RemovedReason{
		models.RemovedMissingFields,
		models.RemovedFutureDated,
		models.RemovedDuplicateTriple,
		models.RemovedMissingComplaintDate,
		models.RemovedBeforeCutoff,
		models.RemovedEndPrecedesStart,
		models.RemovedNoEndDate,
		models.RemovedMultipleZIPs,
	}

	for _, reason := range reasonOrder {
		if n, ok := removed[reason]; ok {
			rows = append(rows, []string{"removed", string(reason), fmt.Sprintf("%d", n)})
		}
	}

	return Table([]string{"kind", "name", "count"}, rows)
}
