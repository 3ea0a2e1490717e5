package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Evaaaz/calendar-reminder-app/internal/models"
)

var (
	previewHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	previewDateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	previewMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

// PreviewSink is the dry-run sink: it prints each event instead of creating
// it and accepts everything. Provenance metadata is shown here precisely
// because this is the one surface it is meant for.
type PreviewSink struct {
	out      io.Writer
	timeZone string
}

// NewPreviewSink creates a preview sink writing to out.
func NewPreviewSink(out io.Writer, timeZone string) *PreviewSink {
	return &PreviewSink{out: out, timeZone: timeZone}
}

// Deliver prints the events and reports all of them as accepted.
func (s *PreviewSink) Deliver(_ context.Context, events []models.EventDescriptor) []Delivered {
	fmt.Fprintln(s.out, previewHeaderStyle.Render(fmt.Sprintf("Dry run: %d event(s) would be created", len(events))))

	accepted := make([]Delivered, 0, len(events))
	for _, event := range events {
		payload := NewPayload(event, s.timeZone)

		fmt.Fprintf(s.out, "  %s  %s\n",
			previewDateStyle.Render(payload.Start.Date),
			payload.Summary)
		if payload.Description != "" {
			fmt.Fprintf(s.out, "      %s\n", payload.Description)
		}
		fmt.Fprintf(s.out, "      %s\n",
			previewMetaStyle.Render(fmt.Sprintf("from %q (%s, offset %+d days)",
				event.Metadata.OriginalEvent,
				event.Metadata.Category,
				event.Metadata.DaysOffset)))

		accepted = append(accepted, Delivered{
			Summary: payload.Summary,
			Date:    payload.Start.Date,
		})
	}

	return accepted
}
