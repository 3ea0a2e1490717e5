package models

import (
	"time"

	"github.com/Evaaaz/calendar-reminder-app/internal/constants"
)

// EventMetadata records the provenance of a generated event. It is carried
// for reporting and the run log, and must be stripped before a descriptor is
// handed to a sink.
type EventMetadata struct {
	OriginalEvent string `json:"original_event"`
	OriginalDate  string `json:"original_date"`
	DaysOffset    int    `json:"days_offset"`
	Category      string `json:"category"`
}

// EventDescriptor is one fully-resolved, sink-ready reminder occurrence.
// Date is an all-day calendar date with no time-of-day component.
type EventDescriptor struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Metadata    EventMetadata `json:"metadata"`
}

// DateString returns the all-day date in YYYY-MM-DD form.
func (e EventDescriptor) DateString() string {
	return e.Date.Format(constants.DateFormat)
}
