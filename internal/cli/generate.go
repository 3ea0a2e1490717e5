package cli

import (
	"context"
	"fmt"
)

type GenerateCmd struct {
	Source         string `arg:"" help:"Directory or http(s) URL serving the CSV sheets."`
	DatesSheet     string `help:"Dates sheet file name (overrides config)."`
	TemplatesSheet string `help:"Templates sheet file name (overrides config)."`
	Calendar       string `short:"c" help:"CalDAV calendar path to create events in (overrides config)."`
	DryRun         bool   `help:"Preview generated events without creating them."`
}

func (c *GenerateCmd) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source must not be empty")
	}
	return nil
}

func (c *GenerateCmd) Run(ctx *Context) error {
	return ctx.RunPipeline(context.Background(), PipelineOptions{
		Source:         c.Source,
		DatesSheet:     c.DatesSheet,
		TemplatesSheet: c.TemplatesSheet,
		CalendarPath:   c.Calendar,
		DryRun:         c.DryRun,
	})
}
