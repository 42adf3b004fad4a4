// Package metrics derives resolution durations and monthly summaries from
// aggregated lifecycle records.
package metrics

import (
	"sort"
	"time"

	"cirp/internal/models"
	"cirp/pkg/dates"
)

// ResolutionRow is one "Days to resolution" summary line: complaints
// resolved in a month and their mean time to resolution.
type ResolutionRow struct {
	Month    string
	MeanDays float64
	Resolved int
}

// StatusRow is one "Resolution status" summary line: complaints opened in a
// month split into resolved and unresolved.
type StatusRow struct {
	Month         string
	PctResolved   float64
	PctUnresolved float64
	Resolved      int
	Unresolved    int
	Total         int
}

// Result carries the enriched surviving records, the removed-reason
// tallies, and both monthly summaries.
type Result struct {
	Survivors        []models.LifecycleRecord
	Removed          models.RemovedCounts
	DaysToResolution []ResolutionRow
	ResolutionStatus []StatusRow
}

// Engine computes resolution metrics against a category configuration and a
// metrics-start cutoff.
type Engine struct {
	cats   models.CategorySet
	cutoff time.Time
}

// NewEngine creates a metrics engine. Records whose start date precedes
// cutoff are excluded from every summary.
func NewEngine(cats models.CategorySet, cutoff time.Time) *Engine {
	return &Engine{cats: cats, cutoff: cutoff}
}

// Compute filters and enriches the lifecycle records, then builds the two
// monthly summaries. Input records are not mutated; survivors are enriched
// copies. Every excluded record lands in exactly one removed-reason
// counter; "no end date" and "multiple ZIP codes" are informational tallies
// over records that still survive.
func (e *Engine) Compute(records []models.LifecycleRecord) Result {
	res := Result{
		Removed: models.RemovedCounts{},
	}

	for _, rec := range records {
		complaintDates := rec.CategoryDates(e.cats, models.CategoryComplaint)
		if len(complaintDates) == 0 {
			res.Removed.Add(models.RemovedMissingComplaintDate, 1)

			continue
		}

		start := earliest(complaintDates)
		if start.Before(e.cutoff) {
			res.Removed.Add(models.RemovedBeforeCutoff, 1)

			continue
		}

		var end time.Time

		terminalDates := e.terminalDates(rec)
		if len(terminalDates) > 0 {
			end = latest(terminalDates)
		}

		if !end.IsZero() && end.Before(start) {
			res.Removed.Add(models.RemovedEndPrecedesStart, 1)

			continue
		}

		rec.StartDate = start
		rec.EndDate = end
		rec.MonthStarted = dates.YearMonth(start)

		if rec.HasEnd() {
			rec.ResolutionDays = dates.DaysBetween(start, end)
			rec.MonthResolved = dates.YearMonth(end)
		} else {
			res.Removed.Add(models.RemovedNoEndDate, 1)
		}

		if rec.HasMultipleZIPs() {
			res.Removed.Add(models.RemovedMultipleZIPs, 1)
		}

		res.Survivors = append(res.Survivors, rec)
	}

	res.DaysToResolution = daysToResolution(res.Survivors)
	res.ResolutionStatus = resolutionStatus(res.Survivors)

	return res
}

func (e *Engine) terminalDates(rec models.LifecycleRecord) []time.Time {
	var out []time.Time

	for _, c := range e.cats.Terminal {
		out = append(out, rec.CategoryDates(e.cats, c)...)
	}

	return out
}

// daysToResolution groups resolved survivors by month resolved and averages
// their resolution durations.
func daysToResolution(records []models.LifecycleRecord) []ResolutionRow {
	type acc struct {
		sum int64
		n   int64
	}

	byMonth := make(map[string]*acc)

	for _, rec := range records {
		if !rec.HasEnd() {
			continue
		}

		a, ok := byMonth[rec.MonthResolved]
		if !ok {
			a = &acc{}
			byMonth[rec.MonthResolved] = a
		}

		a.sum += int64(rec.ResolutionDays)
		a.n++
	}

	rows := make([]ResolutionRow, 0, len(byMonth))
	for month, a := range byMonth {
		rows = append(rows, ResolutionRow{
			Month:    month,
			MeanDays: meanToTenth(a.sum, a.n),
			Resolved: int(a.n),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })

	return rows
}

// resolutionStatus groups all survivors by month started and splits each
// month into resolved and unresolved shares.
func resolutionStatus(records []models.LifecycleRecord) []StatusRow {
	type acc struct {
		resolved int
		total    int
	}

	byMonth := make(map[string]*acc)

	for _, rec := range records {
		a, ok := byMonth[rec.MonthStarted]
		if !ok {
			a = &acc{}
			byMonth[rec.MonthStarted] = a
		}

		a.total++

		if rec.HasEnd() {
			a.resolved++
		}
	}

	rows := make([]StatusRow, 0, len(byMonth))
	for month, a := range byMonth {
		unresolved := a.total - a.resolved
		rows = append(rows, StatusRow{
			Month:         month,
			Resolved:      a.resolved,
			Unresolved:    unresolved,
			Total:         a.total,
			PctResolved:   percentToTenth(int64(a.resolved), int64(a.total)),
			PctUnresolved: percentToTenth(int64(unresolved), int64(a.total)),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })

	return rows
}

func earliest(ts []time.Time) time.Time {
	min := ts[0]
	for _, t := range ts[1:] {
		if t.Before(min) {
			min = t
		}
	}

	return min
}

func latest(ts []time.Time) time.Time {
	max := ts[0]
	for _, t := range ts[1:] {
		if t.After(max) {
			max = t
		}
	}

	return max
}
