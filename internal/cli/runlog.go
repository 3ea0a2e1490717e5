package cli

import (
	"fmt"

	"github.com/Evaaaz/calendar-reminder-app/internal/storage"
)

type LogCmd struct {
	Limit  int  `short:"n" help:"Number of runs to show." default:"20"`
	Events bool `help:"Also list the events each run delivered."`
}

func (c *LogCmd) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be greater than zero")
	}
	return nil
}

func (c *LogCmd) Run(ctx *Context) error {
	store, err := storage.New(ctx.Config.RunLogPath)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to read run log: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet")
		return nil
	}

	for _, run := range runs {
		mode := ""
		if run.DryRun {
			mode = " (dry run)"
		}
		fmt.Printf("%s  %s: generated %d, delivered %d%s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.Source, run.Generated, run.Delivered, mode)

		if !c.Events {
			continue
		}
		events, err := store.DeliveredEvents(run.ID)
		if err != nil {
			return err
		}
		for _, e := range events {
			fmt.Printf("    %s  %s\n", e.Date, e.Summary)
		}
	}

	return nil
}
