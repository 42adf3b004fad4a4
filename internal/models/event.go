// Package models defines data structures for the inspection-history pipeline.
package models

import (
	"fmt"
	"time"
)

// RawEvent is one inspection row as read from the input table, before any
// coercion. All fields are raw cell text; any of them may be empty.
type RawEvent struct {
	EventID     string
	ComplaintID string
	EventType   string
	EventDate   string
	ZIPCode     string
}

// Event is a coerced inspection event. A zero Date means the raw cell was
// empty or unparseable; an empty ZIPCode means no 5-digit run was found.
// Label is assigned during sequencing and stays empty before that.
type Event struct {
	Date        time.Time
	TripleID    string
	EventID     string
	ComplaintID string
	EventType   string
	ZIPCode     string
	Label       string
}

// HasDate reports whether the event carries a usable calendar date.
func (e Event) HasDate() bool {
	return !e.Date.IsZero()
}

// Triple returns the (complaint_id, event_type, event_date) identity of the
// event, used for deduplication.
func (e Event) Triple() string {
	return fmt.Sprintf("%s|%s|%s", e.ComplaintID, e.EventType, e.Date.Format("2006-01-02"))
}

// CompositeLabel builds an event label from a type and a 1-based ordinal,
// e.g. ("complaint", 1) -> "complaint#01".
func CompositeLabel(eventType string, ordinal int) string {
	return fmt.Sprintf("%s#%02d", eventType, ordinal)
}
