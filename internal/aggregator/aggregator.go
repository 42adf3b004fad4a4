// Package aggregator folds normalized inspection events into one lifecycle
// record per complaint.
package aggregator

import (
	"sort"
	"time"

	"cirp/internal/models"
)

// Aggregate groups normalized events by complaint id. Each group becomes a
// lifecycle record whose date map has one entry per composite label (the
// normalizer guarantees at most one surviving event per label). Distinct ZIP
// codes attach in first-seen order; multiplicity is recorded, not rejected,
// so the validator can flag it later.
//
// Records are returned sorted by complaint id for deterministic output.
func Aggregate(events []models.Event) []models.LifecycleRecord {
	byComplaint := make(map[string]*models.LifecycleRecord)
	order := make([]string, 0)

	for _, ev := range events {
		rec, ok := byComplaint[ev.ComplaintID]
		if !ok {
			rec = &models.LifecycleRecord{
				ComplaintID: ev.ComplaintID,
				Dates:       make(map[string]time.Time),
			}
			byComplaint[ev.ComplaintID] = rec
			order = append(order, ev.ComplaintID)
		}

		rec.Dates[ev.Label] = ev.Date

		if ev.ZIPCode != "" && !hasZIP(rec.ZIPs, ev.ZIPCode) {
			rec.ZIPs = append(rec.ZIPs, ev.ZIPCode)
		}
	}

	sort.Strings(order)

	records := make([]models.LifecycleRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *byComplaint[id])
	}

	return records
}

func hasZIP(zips []string, zip string) bool {
	for _, z := range zips {
		if z == zip {
			return true
		}
	}

	return false
}
