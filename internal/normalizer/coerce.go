package normalizer

import (
	"strings"

	"cirp/internal/models"
	"cirp/pkg/dates"
	"cirp/pkg/utils"
)

// coerce turns a raw row into a typed event. Unparseable dates become the
// zero time and ZIP codes without a clean 5-digit run become empty; nothing
// is rejected at this stage.
func coerce(raw models.RawEvent) models.Event {
	ev := models.Event{
		EventID:     strings.TrimSpace(raw.EventID),
		ComplaintID: strings.TrimSpace(raw.ComplaintID),
		EventType:   utils.NormalizeWhitespace(strings.ToLower(raw.EventType)),
		ZIPCode:     NormalizeZIP(raw.ZIPCode),
	}

	if d, ok := dates.Parse(raw.EventDate); ok {
		ev.Date = d
	}

	return ev
}

// NormalizeZIP extracts the first run of exactly 5 digits from a raw ZIP
// cell, discarding surrounding noise ("60647 (rear)" -> "60647"). Values
// with no such run, including 9-digit ZIP+4 strings without a separator,
// normalize to absent.
func NormalizeZIP(raw string) string {
	for _, run := range utils.DigitRuns(raw) {
		if len(run) == 5 {
			return run
		}
	}

	return ""
}
