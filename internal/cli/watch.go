package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/Evaaaz/calendar-reminder-app/internal/errors"
	"github.com/Evaaaz/calendar-reminder-app/internal/logger"
)

type WatchCmd struct {
	Source         string `arg:"" help:"Directory or http(s) URL serving the CSV sheets."`
	Schedule       string `short:"s" help:"Cron schedule (overrides config watch_schedule)."`
	DatesSheet     string `help:"Dates sheet file name (overrides config)."`
	TemplatesSheet string `help:"Templates sheet file name (overrides config)."`
	Calendar       string `short:"c" help:"CalDAV calendar path to create events in (overrides config)."`
	DryRun         bool   `help:"Preview each run without creating events."`
}

func (c *WatchCmd) Run(ctx *Context) error {
	schedule := c.Schedule
	if schedule == "" {
		schedule = ctx.Config.WatchSchedule
	}

	opts := PipelineOptions{
		Source:         c.Source,
		DatesSheet:     c.DatesSheet,
		TemplatesSheet: c.TemplatesSheet,
		CalendarPath:   c.Calendar,
		DryRun:         c.DryRun,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := cron.New()
	_, err := scheduler.AddFunc(schedule, func() {
		logger.Info("scheduled run starting", "source", opts.Source)
		if err := ctx.RunPipeline(runCtx, opts); err != nil {
			// A failed run never stops the watch loop.
			fmt.Println(errors.Format(err))
			logger.Error("scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	fmt.Printf("Watching %s on schedule %q (Ctrl-C to stop)\n", c.Source, schedule)
	scheduler.Start()

	<-runCtx.Done()
	fmt.Println("Stopping...")
	<-scheduler.Stop().Done()

	return nil
}
