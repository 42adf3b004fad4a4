// Package normalizer cleans raw inspection rows into a deterministic,
// deduplicated event set with per-complaint sequence labels.
package normalizer

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"cirp/internal/models"
)

// tripleNamespace seeds the deterministic SHA-1 UUIDs assigned to each
// unique (complaint_id, event_type, event_date) triple.
var tripleNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("cirp/inspection-triple"))

// Removed counts rows filtered out during normalization, by reason.
type Removed struct {
	MissingFields    int
	FutureDated      int
	DuplicateTriples int
}

// Counts converts the tallies to the shared removed-reason counter form.
func (r Removed) Counts() models.RemovedCounts {
	c := models.RemovedCounts{}
	c.Add(models.RemovedMissingFields, r.MissingFields)
	c.Add(models.RemovedFutureDated, r.FutureDated)
	c.Add(models.RemovedDuplicateTriple, r.DuplicateTriples)

	return c
}

// Result is the normalizer's output. Events is the clean, labeled set that
// feeds aggregation. Coerced holds every input row after type coercion but
// before any filtering; the validator's event-level rules run over it so
// that rows the normalizer drops still surface in exception buckets.
type Result struct {
	Events  []models.Event
	Coerced []models.Event
	Removed Removed
}

// Normalize cleans the raw rows: coerce types, drop rows that cannot be
// aggregated (missing complaint id, type or date), drop rows dated after
// exportDate, sort by date, deduplicate (complaint_id, event_type, date)
// triples keeping the first occurrence, and assign composite labels
// "type#NN" with ordinals in ascending date order per (complaint, type)
// group.
func Normalize(raw []models.RawEvent, exportDate time.Time) Result {
	res := Result{
		Coerced: make([]models.Event, 0, len(raw)),
	}

	for _, row := range raw {
		res.Coerced = append(res.Coerced, coerce(row))
	}

	// Filter rows that cannot participate in aggregation.
	kept := make([]models.Event, 0, len(res.Coerced))

	for _, ev := range res.Coerced {
		if ev.ComplaintID == "" || ev.EventType == "" || !ev.HasDate() {
			res.Removed.MissingFields++

			continue
		}

		if ev.Date.After(exportDate) {
			res.Removed.FutureDated++

			continue
		}

		kept = append(kept, ev)
	}

	// Deterministic order: date ascending, then complaint and type so equal
	// dates always sequence the same way.
	sort.SliceStable(kept, func(i, j int) bool {
		if !kept[i].Date.Equal(kept[j].Date) {
			return kept[i].Date.Before(kept[j].Date)
		}

		if kept[i].ComplaintID != kept[j].ComplaintID {
			return kept[i].ComplaintID < kept[j].ComplaintID
		}

		return kept[i].EventType < kept[j].EventType
	})

	// Deduplicate triples, keeping the first occurrence in sort order.
	seen := make(map[string]bool, len(kept))
	res.Events = make([]models.Event, 0, len(kept))

	for _, ev := range kept {
		triple := ev.Triple()
		if seen[triple] {
			res.Removed.DuplicateTriples++

			continue
		}

		seen[triple] = true
		ev.TripleID = uuid.NewSHA1(tripleNamespace, []byte(triple)).String()
		res.Events = append(res.Events, ev)
	}

	// Sequence surviving events within each (complaint, type) group. The
	// slice is already date-ascending, so ordinals follow date order.
	ordinals := make(map[string]int)

	for i := range res.Events {
		key := res.Events[i].ComplaintID + "\x00" + res.Events[i].EventType
		ordinals[key]++
		res.Events[i].Label = models.CompositeLabel(res.Events[i].EventType, ordinals[key])
	}

	return res
}
