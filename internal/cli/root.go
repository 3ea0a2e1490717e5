package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Evaaaz/calendar-reminder-app/internal/config"
	"github.com/Evaaaz/calendar-reminder-app/internal/generator"
	"github.com/Evaaaz/calendar-reminder-app/internal/logger"
	"github.com/Evaaaz/calendar-reminder-app/internal/provider"
	"github.com/Evaaaz/calendar-reminder-app/internal/sink"
	"github.com/Evaaaz/calendar-reminder-app/internal/storage"
)

// Context carries shared state into command Run methods.
type Context struct {
	Config     *config.Config
	ConfigPath string
}

// PipelineOptions parameterizes one generation pass.
type PipelineOptions struct {
	Source         string
	DatesSheet     string
	TemplatesSheet string
	CalendarPath   string
	DryRun         bool
}

// NewSink builds the delivery sink for a pass: the preview sink for dry
// runs, the configured CalDAV calendar otherwise.
func (c *Context) NewSink(opts PipelineOptions) (sink.Sink, error) {
	if opts.DryRun {
		return sink.NewPreviewSink(os.Stdout, c.Config.TimeZone), nil
	}

	calendarPath := opts.CalendarPath
	if calendarPath == "" {
		calendarPath = c.Config.CalDAV.CalendarPath
	}
	if c.Config.CalDAV.URL == "" {
		return nil, fmt.Errorf("no CalDAV server configured (set caldav.url in %s)", c.ConfigPath)
	}
	if calendarPath == "" {
		return nil, fmt.Errorf("no calendar configured (set caldav.calendar_path or pass --calendar; see 'calrem calendars')")
	}

	return sink.NewCalDAVSink(
		c.Config.CalDAV.URL,
		c.Config.CalDAV.Username,
		config.ResolvePassword(),
		calendarPath,
		c.Config.TimeZone,
	), nil
}

// RunPipeline executes one full provider -> generator -> sink pass and
// records it in the run log. Individual record and event failures inside the
// pass are diagnostics, not errors; only being unable to read the source at
// all fails the pass.
func (c *Context) RunPipeline(ctx context.Context, opts PipelineOptions) error {
	startedAt := time.Now()

	datesSheet := opts.DatesSheet
	if datesSheet == "" {
		datesSheet = c.Config.DatesSheet
	}
	templatesSheet := opts.TemplatesSheet
	if templatesSheet == "" {
		templatesSheet = c.Config.TemplatesSheet
	}

	p := provider.New(provider.NewCSVSource(opts.Source), datesSheet, templatesSheet)
	data, err := p.Read(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d important dates and %d templates\n",
		len(data.ImportantDates), len(data.Templates))
	if len(data.ImportantDates) == 0 || len(data.Templates) == 0 {
		return fmt.Errorf("no data found in %s, check the source and sheet names", opts.Source)
	}

	events := generator.New(data).GenerateEvents()
	fmt.Printf("Generated %d calendar event(s)\n", len(events))
	if len(events) == 0 {
		logger.Warn("no events were generated, check the data and templates")
		return nil
	}

	for i, event := range events {
		if i == 5 {
			fmt.Printf("  ... and %d more\n", len(events)-5)
			break
		}
		fmt.Printf("  %d. %s: %s\n", i+1, event.DateString(), event.Summary)
	}

	deliverySink, err := c.NewSink(opts)
	if err != nil {
		return err
	}

	delivered := deliverySink.Deliver(ctx, events)
	if opts.DryRun {
		fmt.Println("Dry run completed; no events were created.")
	} else {
		fmt.Printf("Created %d of %d event(s)\n", len(delivered), len(events))
	}

	c.recordRun(storage.Run{
		StartedAt: startedAt,
		Source:    opts.Source,
		Generated: len(events),
		Delivered: len(delivered),
		DryRun:    opts.DryRun,
	}, delivered)

	return nil
}

// recordRun appends the pass to the local run log. The log is informational,
// so failures are warnings.
func (c *Context) recordRun(run storage.Run, delivered []sink.Delivered) {
	store, err := storage.New(c.Config.RunLogPath)
	if err != nil {
		logger.Warn("run log unavailable", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.RecordRun(run, delivered); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
