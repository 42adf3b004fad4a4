// Package report renders pipeline results as Excel workbooks and console
// markdown tables.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"cirp/internal/ingest"
	"cirp/internal/metrics"
	"cirp/internal/models"
	"cirp/internal/validator"
)

// Sheet names in the summary workbook.
const (
	SheetDaysToResolution = "Days to resolution"
	SheetResolutionStatus = "Resolution status"
	SheetNotes            = "Notes"
)

const dateLayout = "2006-01-02"

// WriteSummaryWorkbook writes the two monthly summaries to one workbook.
func WriteSummaryWorkbook(path string, res metrics.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetDaysToResolution); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]interface{}{
		{"month_resolved", "mean_days_to_resolution", "n_resolved"},
	}
	for _, row := range res.DaysToResolution {
		rows = append(rows, []interface{}{row.Month, row.MeanDays, row.Resolved})
	}

	if err := writeSheet(f, SheetDaysToResolution, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetResolutionStatus); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	rows = [][]interface{}{
		{"month_started", "n_resolved", "pct_resolved", "n_unresolved", "pct_unresolved", "n_total"},
	}
	for _, row := range res.ResolutionStatus {
		rows = append(rows, []interface{}{
			row.Month, row.Resolved, row.PctResolved, row.Unresolved, row.PctUnresolved, row.Total,
		})
	}

	if err := writeSheet(f, SheetResolutionStatus, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save summary workbook: %w", err)
	}

	return nil
}

// WriteExceptionsWorkbook writes one sheet per exception bucket plus a notes
// sheet describing each bucket and the removed-reason tallies.
func WriteExceptionsWorkbook(path string, exc validator.Exceptions, removed models.RemovedCounts, prov ingest.Provenance) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetNotes); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeSheet(f, SheetNotes, notesRows(exc, removed, prov)); err != nil {
		return err
	}

	sheets := []struct {
		bucket models.Bucket
		rows   [][]interface{}
	}{
		{models.BucketProblemComplaintID, eventRows(exc.ProblemComplaintID)},
		{models.BucketInvalidDate, eventRows(exc.InvalidDate)},
		{models.BucketMultipleZIP, recordRows(exc.MultipleZIP)},
		{models.BucketMissingStartDate, recordRows(exc.MissingStartDate)},
		{models.BucketMissingEndDate, recordRows(exc.MissingEndDate)},
		{models.BucketLateStartDate, recordRows(exc.LateStartDate)},
		{models.BucketEarlyEndDate, recordRows(exc.EarlyEndDate)},
	}

	for _, s := range sheets {
		if _, err := f.NewSheet(string(s.bucket)); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", s.bucket, err)
		}

		if err := writeSheet(f, string(s.bucket), s.rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save exceptions workbook: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}

		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
		}
	}

	return nil
}

func eventRows(events []models.Event) [][]interface{} {
	rows := [][]interface{}{
		{"event_id", "complaint_id", "inspection_type", "inspection_date", "zip_code"},
	}

	for _, ev := range events {
		date := ""
		if ev.HasDate() {
			date = ev.Date.Format(dateLayout)
		}

		rows = append(rows, []interface{}{ev.EventID, ev.ComplaintID, ev.EventType, date, ev.ZIPCode})
	}

	return rows
}

func recordRows(records []models.LifecycleRecord) [][]interface{} {
	rows := [][]interface{}{
		{"complaint_id", "n_inspections", "inspections", "zip_1", "zip_2"},
	}

	for _, rec := range records {
		var parts []string
		for _, label := range rec.Labels() {
			parts = append(parts, fmt.Sprintf("%s=%s", label, rec.Dates[label].Format(dateLayout)))
		}

		zip1, zip2 := "", ""
		if len(rec.ZIPs) > 0 {
			zip1 = rec.ZIPs[0]
		}

		if len(rec.ZIPs) > 1 {
			zip2 = rec.ZIPs[1]
		}

		rows = append(rows, []interface{}{
			rec.ComplaintID, len(rec.Dates), strings.Join(parts, "; "), zip1, zip2,
		})
	}

	return rows
}

func notesRows(exc validator.Exceptions, removed models.RemovedCounts, prov ingest.Provenance) [][]interface{} {
	rows := [][]interface{}{
		{"section", "name", "value", "description"},
		{"source", "path", prov.Path, "input dataset"},
		{"source", "sha256", prov.SHA256, "checksum of the input snapshot"},
		{"source", "rows", prov.Rows, "raw rows read"},
	}

	counts := exc.Counts()
	for _, bucket := range models.BucketOrder {
		rows = append(rows, []interface{}{
			"exceptions", string(bucket), counts[bucket], models.BucketDescriptions[bucket],
		})
	}

	reasons := make([]string, 0, len(removed))
	for reason := range removed {
		reasons = append(reasons, string(reason))
	}

	sort.Strings(reasons)

	for _, reason := range reasons {
		rows = append(rows, []interface{}{
			"removed", reason, removed[models.RemovedReason(reason)], "records excluded or tallied for this reason",
		})
	}

	return rows
}
