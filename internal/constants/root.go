package constants

import "time"

const (
	AppName            = "calrem"
	DefaultKeyringUser = "caldav-password"
	DefaultConfigPath  = "~/.config/calrem/config.yaml"
	Version            = "v0.2.0"

	// DateFormat is the standard all-day date format used throughout the
	// application and in sink payloads (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PasswordEnvVar is the environment variable consulted for the CalDAV
	// password before falling back to the OS keyring
	PasswordEnvVar = "CALREM_CALDAV_PASSWORD"

	// Sheet file names served by a published-spreadsheet CSV export
	DefaultDatesSheet     = "important_dates.csv"
	DefaultTemplatesSheet = "templates.csv"

	// Column layout of the dates table
	DatesColumnCount = 6

	// Column layout of the templates table: name, description, then up to
	// MaxRemindersPerTemplate (offset, title, description) triples
	MaxRemindersPerTemplate = 5
	ReminderColumnSpan      = 3
	TemplatesColumnCount    = 2 + MaxRemindersPerTemplate*ReminderColumnSpan

	// Sink constants
	DefaultTimeZone    = "UTC"
	CalDAVTimeout      = 30 * time.Second
	ProviderTimeout    = 15 * time.Second
	DefaultWatchCron  = "0 6 * * *"
	EventPathSuffix   = ".ics"
	CalendarProductID = "-//calrem//calendar-reminder-app//EN"
)
