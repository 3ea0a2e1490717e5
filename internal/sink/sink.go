// Package sink delivers generated event descriptors to a calendar service.
// Sinks accept the wire payload shape only; descriptor metadata is stripped
// before it ever reaches a sink implementation.
package sink

import (
	"context"

	"github.com/Evaaaz/calendar-reminder-app/internal/models"
)

// EventDateTime is the all-day date half of a payload. TimeZone is a label
// stamped onto the payload, not a conversion instruction.
type EventDateTime struct {
	Date     string `json:"date"`
	TimeZone string `json:"timeZone"`
}

// ReminderPolicy selects the sink's default reminder behavior for an event.
type ReminderPolicy struct {
	UseDefault bool `json:"useDefault"`
}

// Payload is the sink-facing representation of one event. It deliberately
// has no metadata field: provenance never crosses the sink boundary.
type Payload struct {
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	Start       EventDateTime  `json:"start"`
	End         EventDateTime  `json:"end"`
	Reminders   ReminderPolicy `json:"reminders"`
}

// NewPayload shapes a descriptor for delivery. Start and end carry the same
// all-day date, and the default reminder policy is always requested.
func NewPayload(e models.EventDescriptor, timeZone string) Payload {
	date := EventDateTime{
		Date:     e.DateString(),
		TimeZone: timeZone,
	}
	return Payload{
		Summary:     e.Summary,
		Description: e.Description,
		Start:       date,
		End:         date,
		Reminders:   ReminderPolicy{UseDefault: true},
	}
}

// Delivered describes one accepted event.
type Delivered struct {
	UID     string
	Path    string
	Summary string
	Date    string
}

// Sink accepts generated descriptors and reports the subset that was
// accepted. Implementations must attempt each event independently: a failure
// on one event may not abort the rest, so len(result) <= len(events) always
// holds and a partial result is not an error.
type Sink interface {
	Deliver(ctx context.Context, events []models.EventDescriptor) []Delivered
}
