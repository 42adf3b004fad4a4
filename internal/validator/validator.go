// Package validator runs the data-quality rule battery over coerced events
// and aggregated lifecycle records, partitioning violators into named
// exception buckets.
package validator

import (
	"regexp"
	"time"

	"cirp/internal/models"
)

// complaintIDPattern accepts purely numeric ids and numeric ids with a
// single '.' or '-' separator ("2023-00147", "41.07").
var complaintIDPattern = regexp.MustCompile(`^\d+([.-]\d+)?$`)

// Exceptions holds one bucket per rule. Buckets are independent and
// non-exclusive: a record may land in several, and an empty bucket is a
// clean result, not an error.
type Exceptions struct {
	ProblemComplaintID []models.Event
	InvalidDate        []models.Event
	MultipleZIP        []models.LifecycleRecord
	MissingStartDate   []models.LifecycleRecord
	MissingEndDate     []models.LifecycleRecord
	LateStartDate      []models.LifecycleRecord
	EarlyEndDate       []models.LifecycleRecord
}

// Counts tallies every bucket by name.
func (e Exceptions) Counts() map[models.Bucket]int {
	return map[models.Bucket]int{
		models.BucketProblemComplaintID: len(e.ProblemComplaintID),
		models.BucketInvalidDate:        len(e.InvalidDate),
		models.BucketMultipleZIP:        len(e.MultipleZIP),
		models.BucketMissingStartDate:   len(e.MissingStartDate),
		models.BucketMissingEndDate:     len(e.MissingEndDate),
		models.BucketLateStartDate:      len(e.LateStartDate),
		models.BucketEarlyEndDate:       len(e.EarlyEndDate),
	}
}

// Validator evaluates the fixed rule set against a dataset window and
// category configuration.
type Validator struct {
	cats   models.CategorySet
	window models.DatasetWindow
}

// New creates a validator for the given categories and dataset window.
func New(cats models.CategorySet, window models.DatasetWindow) *Validator {
	return &Validator{cats: cats, window: window}
}

// Check runs every rule and returns the populated buckets. Event-level
// rules (problem_complaint_id, invalid_date) run over the coerced
// pre-filter events so rows the normalizer dropped are still accounted for;
// record-level rules run over the lifecycle records.
func (v *Validator) Check(coerced []models.Event, records []models.LifecycleRecord) Exceptions {
	var exc Exceptions

	for _, ev := range coerced {
		if !complaintIDPattern.MatchString(ev.ComplaintID) {
			exc.ProblemComplaintID = append(exc.ProblemComplaintID, ev)
		}

		// Absent dates are missing data, not invalid data; they never
		// enter the range comparison.
		if ev.HasDate() && (ev.Date.Before(v.window.StartDate) || ev.Date.After(v.window.ExportDate)) {
			exc.InvalidDate = append(exc.InvalidDate, ev)
		}
	}

	for _, rec := range records {
		if rec.HasMultipleZIPs() {
			exc.MultipleZIP = append(exc.MultipleZIP, rec)
		}

		complaintDates := rec.CategoryDates(v.cats, models.CategoryComplaint)
		if len(complaintDates) == 0 {
			exc.MissingStartDate = append(exc.MissingStartDate, rec)
		}

		terminalDates := v.terminalDates(rec)
		if len(terminalDates) == 0 {
			exc.MissingEndDate = append(exc.MissingEndDate, rec)
		}

		if v.lateStart(rec, complaintDates) {
			exc.LateStartDate = append(exc.LateStartDate, rec)
		}

		if v.earlyEnd(rec, terminalDates) {
			exc.EarlyEndDate = append(exc.EarlyEndDate, rec)
		}
	}

	return exc
}

// lateStart flags records whose complaint date is strictly later than the
// earliest date among the non-complaint categories present. Records with no
// complaint date or no non-complaint dates are excluded from the comparison.
func (v *Validator) lateStart(rec models.LifecycleRecord, complaintDates []time.Time) bool {
	if len(complaintDates) == 0 {
		return false
	}

	var others []time.Time

	for _, c := range v.cats.Order {
		if c == models.CategoryComplaint {
			continue
		}

		others = append(others, rec.CategoryDates(v.cats, c)...)
	}

	if len(others) == 0 {
		return false
	}

	return minDate(complaintDates).After(minDate(others))
}

// earlyEnd flags records where any closure date is strictly earlier than the
// latest date among the non-terminal categories present.
func (v *Validator) earlyEnd(rec models.LifecycleRecord, terminalDates []time.Time) bool {
	if len(terminalDates) == 0 {
		return false
	}

	var nonTerminal []time.Time

	for _, c := range v.cats.Order {
		if v.cats.IsTerminal(c) {
			continue
		}

		nonTerminal = append(nonTerminal, rec.CategoryDates(v.cats, c)...)
	}

	if len(nonTerminal) == 0 {
		return false
	}

	return minDate(terminalDates).Before(maxDate(nonTerminal))
}

func (v *Validator) terminalDates(rec models.LifecycleRecord) []time.Time {
	var out []time.Time

	for _, c := range v.cats.Terminal {
		out = append(out, rec.CategoryDates(v.cats, c)...)
	}

	return out
}

func minDate(ts []time.Time) time.Time {
	min := ts[0]
	for _, t := range ts[1:] {
		if t.Before(min) {
			min = t
		}
	}

	return min
}

func maxDate(ts []time.Time) time.Time {
	max := ts[0]
	for _, t := range ts[1:] {
		if t.After(max) {
			max = t
		}
	}

	return max
}
