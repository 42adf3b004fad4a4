package models

import (
	"sort"
	"time"
)

// LifecycleRecord is the per-complaint view of the dataset: a sparse mapping
// from composite label to the date that event occurred, plus the distinct ZIP
// codes seen for the complaint in first-seen order.
//
// StartDate, EndDate, ResolutionDays, MonthStarted and MonthResolved are
// derived fields populated by the metrics engine; they are zero-valued on
// records fresh out of aggregation.
type LifecycleRecord struct {
	StartDate      time.Time
	EndDate        time.Time
	Dates          map[string]time.Time
	ComplaintID    string
	MonthStarted   string
	MonthResolved  string
	ZIPs           []string
	ResolutionDays int
}

// HasStart reports whether a complaint-category date was found.
func (r LifecycleRecord) HasStart() bool {
	return !r.StartDate.IsZero()
}

// HasEnd reports whether a closure-category date was found.
func (r LifecycleRecord) HasEnd() bool {
	return !r.EndDate.IsZero()
}

// HasMultipleZIPs reports whether a second distinct ZIP code was observed.
func (r LifecycleRecord) HasMultipleZIPs() bool {
	return len(r.ZIPs) > 1
}

// Labels returns the record's composite labels in sorted order.
func (r LifecycleRecord) Labels() []string {
	labels := make([]string, 0, len(r.Dates))
	for label := range r.Dates {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	return labels
}

// CategoryDates returns the dates of every label whose category matches c,
// resolved against the given category set. Labels with unrecognized
// categories never match.
func (r LifecycleRecord) CategoryDates(set CategorySet, c Category) []time.Time {
	var out []time.Time

	for label, date := range r.Dates {
		if got, ok := set.Match(label); ok && got == c {
			out = append(out, date)
		}
	}

	return out
}
