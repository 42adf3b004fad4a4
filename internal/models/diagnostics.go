package models

import "time"

// Bucket names one data-quality exception partition. Buckets are not
// mutually exclusive; a record may appear in several.
type Bucket string

// Exception buckets produced by the validator.
const (
	BucketProblemComplaintID Bucket = "problem_complaint_id"
	BucketInvalidDate        Bucket = "invalid_date"
	BucketMultipleZIP        Bucket = "multiple_zip"
	BucketMissingStartDate   Bucket = "missing_start_date"
	BucketMissingEndDate     Bucket = "missing_end_date"
	BucketLateStartDate      Bucket = "late_start_date"
	BucketEarlyEndDate       Bucket = "early_end_date"
)

// BucketOrder lists all buckets in reporting order.
var BucketOrder = []Bucket{
	BucketProblemComplaintID,
	BucketInvalidDate,
	BucketMultipleZIP,
	BucketMissingStartDate,
	BucketMissingEndDate,
	BucketLateStartDate,
	BucketEarlyEndDate,
}

// BucketDescriptions explains each bucket for the exceptions workbook's
// notes sheet.
var BucketDescriptions = map[Bucket]string{
	BucketProblemComplaintID: "complaint id is missing or is not numeric (with optional '.' or '-' separator)",
	BucketInvalidDate:        "inspection date falls outside the dataset's start..export window",
	BucketMultipleZIP:        "complaint has more than one distinct property ZIP code",
	BucketMissingStartDate:   "complaint has no complaint-category inspection",
	BucketMissingEndDate:     "complaint has no desk approval and no admin closure inspection",
	BucketLateStartDate:      "complaint date is later than an earlier non-complaint inspection",
	BucketEarlyEndDate:       "a closure date precedes the latest non-closure inspection",
}

// RemovedReason names one cause for excluding or tallying a record during
// normalization or metrics computation.
type RemovedReason string

// Removed-reason counter keys.
const (
	RemovedMissingFields        RemovedReason = "missing required fields"
	RemovedFutureDated          RemovedReason = "dated after export"
	RemovedDuplicateTriple      RemovedReason = "duplicate inspection"
	RemovedMissingComplaintDate RemovedReason = "missing complaint date"
	RemovedBeforeCutoff         RemovedReason = "started before metrics cutoff"
	RemovedEndPrecedesStart     RemovedReason = "end precedes start"
	RemovedNoEndDate            RemovedReason = "no end date"
	RemovedMultipleZIPs         RemovedReason = "multiple ZIP codes"
)

// RemovedCounts tallies records per removed reason.
type RemovedCounts map[RemovedReason]int

// Add increments the counter for reason by n.
func (c RemovedCounts) Add(reason RemovedReason, n int) {
	if n != 0 {
		c[reason] += n
	}
}

// Total returns the sum over all reasons.
func (c RemovedCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

// DatasetWindow carries the dataset's declared temporal bounds and the
// metrics cutoff, all as pure calendar dates.
type DatasetWindow struct {
	StartDate        time.Time
	ExportDate       time.Time
	MetricsStartDate time.Time
}
