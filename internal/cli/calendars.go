package cli

import (
	"context"
	"fmt"

	"github.com/Evaaaz/calendar-reminder-app/internal/config"
	"github.com/Evaaaz/calendar-reminder-app/internal/sink"
)

type CalendarsCmd struct{}

func (c *CalendarsCmd) Run(ctx *Context) error {
	if ctx.Config.CalDAV.URL == "" {
		return fmt.Errorf("no CalDAV server configured (set caldav.url in %s)", ctx.ConfigPath)
	}

	s := sink.NewCalDAVSink(
		ctx.Config.CalDAV.URL,
		ctx.Config.CalDAV.Username,
		config.ResolvePassword(),
		"", // discovery does not need a calendar
		ctx.Config.TimeZone,
	)

	calendars, err := s.ListCalendars(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list calendars: %w", err)
	}
	if len(calendars) == 0 {
		fmt.Println("No calendars found")
		return nil
	}

	fmt.Println("Available calendars:")
	for _, cal := range calendars {
		fmt.Printf("  - %s (%s)\n", cal.Name, cal.Path)
	}
	fmt.Println("\nUse a calendar path with --calendar or set caldav.calendar_path in the config.")

	return nil
}
