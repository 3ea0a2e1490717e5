package generator

import (
	"time"

	"github.com/Evaaaz/calendar-reminder-app/internal/logger"
	"github.com/Evaaaz/calendar-reminder-app/internal/models"
	"github.com/Evaaaz/calendar-reminder-app/internal/utils"
)

// nowFunc is overridable in tests to pin the fallback date.
var nowFunc = time.Now

// Generator resolves date records against their templates and expands each
// template's reminder rules into dated event descriptors. It is a pure
// transformation over already-materialized inputs: no I/O, no mutation of
// its inputs, safe for concurrent use on disjoint data.
type Generator struct {
	records   []models.DateRecord
	templates map[string]models.Template
}

// New builds a Generator from the provider's record collections. The
// template lookup map is built once here; duplicate template names are
// last-wins, matching map-key semantics of the templates table. Construction
// never fails.
func New(data models.SheetData) *Generator {
	templates := make(map[string]models.Template, len(data.Templates))
	for _, t := range data.Templates {
		templates[t.Name] = t
	}
	return &Generator{
		records:   data.ImportantDates,
		templates: templates,
	}
}

// GenerateEvents produces one EventDescriptor per (record, reminder rule)
// pairing, in stable order: records in input order, rules in template order.
// Records with an empty or unmatched category contribute zero events and are
// diagnosed, not failed.
func (g *Generator) GenerateEvents() []models.EventDescriptor {
	var events []models.EventDescriptor

	for _, record := range g.records {
		template, ok := g.templates[record.Category]
		if record.Category == "" || !ok {
			logger.Warn("no template found for category, skipping record",
				"category", record.Category,
				"event", record.EventName)
			continue
		}

		for _, rule := range template.Reminders {
			events = append(events, g.buildEvent(record, rule))
		}
	}

	return events
}

// buildEvent assembles a single descriptor. It never fails: an unparseable
// base date falls back to the current processing date (lossy but non-fatal),
// and missing placeholder values substitute as empty strings.
func (g *Generator) buildEvent(record models.DateRecord, rule models.ReminderRule) models.EventDescriptor {
	baseDate, err := utils.ParseLooseDate(record.Date)
	if err != nil {
		logger.Warn("invalid date, falling back to today",
			"date", record.Date,
			"event", record.EventName)
		baseDate = utils.DateOnly(nowFunc())
	}

	eventDate := utils.AddDays(baseDate, rule.DaysOffset)

	return models.EventDescriptor{
		Summary:     Substitute(rule.TitleTemplate, record),
		Description: Substitute(rule.DescriptionTemplate, record),
		Date:        eventDate,
		Metadata: models.EventMetadata{
			OriginalEvent: record.EventName,
			OriginalDate:  record.Date,
			DaysOffset:    rule.DaysOffset,
			Category:      record.Category,
		},
	}
}
