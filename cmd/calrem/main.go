package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/Evaaaz/calendar-reminder-app/internal/cli"
	"github.com/Evaaaz/calendar-reminder-app/internal/config"
	"github.com/Evaaaz/calendar-reminder-app/internal/constants"
	"github.com/Evaaaz/calendar-reminder-app/internal/errors"
	"github.com/Evaaaz/calendar-reminder-app/internal/logger"
	"github.com/Evaaaz/calendar-reminder-app/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." default:"~/.config/calrem/config.yaml"`
	Debug   bool   `help:"Enable debug logging."`

	Generate  cli.GenerateCmd  `cmd:"" help:"Generate reminder events from a tabular source and deliver them."`
	Watch     cli.WatchCmd     `cmd:"" help:"Run the generate pipeline on a cron schedule."`
	Calendars cli.CalendarsCmd `cmd:"" help:"List calendars on the configured CalDAV account."`
	Log       cli.LogCmd       `cmd:"" help:"Show recent generation runs."`
	Creds     struct {
		Set   cli.CredsSetCmd   `cmd:"" help:"Store the CalDAV password in the OS keyring."`
		Clear cli.CredsClearCmd `cmd:"" help:"Remove the CalDAV password from the OS keyring."`
	} `cmd:"" help:"Manage CalDAV credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Create calendar reminders from tabular important-date and template sheets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := utils.ExpandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	conf, err := config.Load(configPath)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Config:     conf,
		ConfigPath: configPath,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
