// Package pipeline wires the four transformation stages (normalize,
// aggregate, validate, compute metrics) into a single pass over the
// dataset. Diagnostics travel in the result, never in ambient state.
package pipeline

import (
	"cirp/internal/aggregator"
	"cirp/internal/metrics"
	"cirp/internal/models"
	"cirp/internal/normalizer"
	"cirp/internal/validator"
)

// Result is the complete output of one pipeline run.
type Result struct {
	Normalized normalizer.Result
	Records    []models.LifecycleRecord
	Exceptions validator.Exceptions
	Metrics    metrics.Result
}

// RemovedCounts merges the normalizer's and the metrics engine's
// removed-reason tallies, so every dropped row is accounted for in one
// place.
func (r Result) RemovedCounts() models.RemovedCounts {
	merged := models.RemovedCounts{}

	for reason, n := range r.Normalized.Removed.Counts() {
		merged.Add(reason, n)
	}

	for reason, n := range r.Metrics.Removed {
		merged.Add(reason, n)
	}

	return merged
}

// Run executes the full pipeline over the raw rows. Stages run strictly in
// sequence; each consumes the previous stage's output and produces a new
// value. Malformed data is never an error here; it surfaces in exception
// buckets and removed-reason counters.
func Run(raw []models.RawEvent, window models.DatasetWindow, cats models.CategorySet) Result {
	norm := normalizer.Normalize(raw, window.ExportDate)

	records := aggregator.Aggregate(norm.Events)

	exc := validator.New(cats, window).Check(norm.Coerced, records)

	met := metrics.NewEngine(cats, window.MetricsStartDate).Compute(records)

	return Result{
		Normalized: norm,
		Records:    records,
		Exceptions: exc,
		Metrics:    met,
	}
}
