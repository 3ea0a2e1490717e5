// Package provider reads the important-dates and templates tables from a
// tabular source and shapes the raw rows into record collections for the
// generator. Sources only hand back rows already split into columns; all
// column-layout knowledge lives here.
package provider

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Evaaaz/calendar-reminder-app/internal/constants"
	"github.com/Evaaaz/calendar-reminder-app/internal/logger"
	"github.com/Evaaaz/calendar-reminder-app/internal/models"
)

// RowSource fetches one named sheet as rows of columns, header row included.
type RowSource interface {
	FetchRows(ctx context.Context, sheet string) ([][]string, error)
}

// Provider assembles SheetData from a RowSource.
type Provider struct {
	source         RowSource
	datesSheet     string
	templatesSheet string
}

// New creates a Provider over the given source. Empty sheet names fall back
// to the defaults.
func New(source RowSource, datesSheet, templatesSheet string) *Provider {
	if datesSheet == "" {
		datesSheet = constants.DefaultDatesSheet
	}
	if templatesSheet == "" {
		templatesSheet = constants.DefaultTemplatesSheet
	}
	return &Provider{
		source:         source,
		datesSheet:     datesSheet,
		templatesSheet: templatesSheet,
	}
}

// Read fetches and parses both tables.
func (p *Provider) Read(ctx context.Context) (models.SheetData, error) {
	dateRows, err := p.source.FetchRows(ctx, p.datesSheet)
	if err != nil {
		return models.SheetData{}, fmt.Errorf("fetch %s: %w", p.datesSheet, err)
	}

	templateRows, err := p.source.FetchRows(ctx, p.templatesSheet)
	if err != nil {
		return models.SheetData{}, fmt.Errorf("fetch %s: %w", p.templatesSheet, err)
	}

	return models.SheetData{
		ImportantDates: ParseDateRows(skipHeader(dateRows)),
		Templates:      ParseTemplateRows(skipHeader(templateRows)),
	}, nil
}

// skipHeader drops the header row both tables carry.
func skipHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	return rows[1:]
}

// ParseDateRows maps raw rows onto DateRecords. Column order is fixed:
// event_name, date, category, person, notes, recurrence. Missing trailing
// columns are treated as empty strings, never as errors.
func ParseDateRows(rows [][]string) []models.DateRecord {
	records := make([]models.DateRecord, 0, len(rows))

	for _, row := range rows {
		row = padRow(row, constants.DatesColumnCount)
		records = append(records, models.DateRecord{
			EventName:  row[0],
			Date:       row[1],
			Category:   row[2],
			Person:     row[3],
			Notes:      row[4],
			Recurrence: row[5],
		})
	}

	return records
}

// ParseTemplateRows maps raw rows onto Templates. Columns are template_name,
// description, then up to five (days_offset, title, description) triples.
// Triples with a blank offset are skipped silently; triples whose offset is
// not an integer are dropped with a warning so a provider-side defect never
// blocks the other reminders in the same template.
func ParseTemplateRows(rows [][]string) []models.Template {
	templates := make([]models.Template, 0, len(rows))

	for _, row := range rows {
		row = padRow(row, constants.TemplatesColumnCount)

		template := models.Template{
			Name:        row[0],
			Description: row[1],
			Reminders:   []models.ReminderRule{},
		}

		for i := 0; i < constants.MaxRemindersPerTemplate; i++ {
			base := 2 + i*constants.ReminderColumnSpan

			offsetText := strings.TrimSpace(row[base])
			if offsetText == "" {
				continue
			}

			offset, err := strconv.Atoi(offsetText)
			if err != nil {
				logger.Warn("invalid days offset, dropping reminder",
					"offset", row[base],
					"template", template.Name)
				continue
			}

			template.Reminders = append(template.Reminders, models.ReminderRule{
				DaysOffset:          offset,
				TitleTemplate:       row[base+1],
				DescriptionTemplate: row[base+2],
			})
		}

		templates = append(templates, template)
	}

	return templates
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
