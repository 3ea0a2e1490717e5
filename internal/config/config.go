package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Evaaaz/calendar-reminder-app/internal/constants"
)

// CalDAVConfig describes the calendar service events are delivered to.
// The password deliberately has no place here: it is resolved from the
// environment or the OS keyring (see creds.go).
type CalDAVConfig struct {
	// URL is the CalDAV server endpoint.
	URL string `yaml:"url"`
	// Username for HTTP basic auth.
	Username string `yaml:"username"`
	// CalendarPath is the collection events are PUT into. Discoverable via
	// `calrem calendars`.
	CalendarPath string `yaml:"calendar_path"`
}

// Config is the top-level application configuration.
type Config struct {
	CalDAV CalDAVConfig `yaml:"caldav"`

	// TimeZone is the label stamped into sink payloads. Informational only:
	// events are all-day and never converted.
	TimeZone string `yaml:"timezone"`

	// DatesSheet / TemplatesSheet are the sheet file names fetched from the
	// source directory or URL.
	DatesSheet     string `yaml:"dates_sheet"`
	TemplatesSheet string `yaml:"templates_sheet"`

	// WatchSchedule is the cron expression used by `calrem watch`.
	WatchSchedule string `yaml:"watch_schedule"`

	// RunLogPath is the SQLite run log location.
	RunLogPath string `yaml:"run_log_path"`
}

// DefaultConfig returns an in-memory default configuration rooted under the
// given config directory.
func DefaultConfig(configDir string) *Config {
	return &Config{
		TimeZone:       constants.DefaultTimeZone,
		DatesSheet:     constants.DefaultDatesSheet,
		TemplatesSheet: constants.DefaultTemplatesSheet,
		WatchSchedule:  constants.DefaultWatchCron,
		RunLogPath:     filepath.Join(configDir, "calrem.db"),
	}
}

// Normalize fills in missing values so partially-filled configs still behave.
func (c *Config) Normalize(configDir string) {
	if c.TimeZone == "" {
		c.TimeZone = constants.DefaultTimeZone
	}
	if c.DatesSheet == "" {
		c.DatesSheet = constants.DefaultDatesSheet
	}
	if c.TemplatesSheet == "" {
		c.TemplatesSheet = constants.DefaultTemplatesSheet
	}
	if c.WatchSchedule == "" {
		c.WatchSchedule = constants.DefaultWatchCron
	}
	if c.RunLogPath == "" {
		c.RunLogPath = filepath.Join(configDir, "calrem.db")
	}
}

// Load loads the YAML config at path. A missing file is a first run: the
// default config is written (0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	configDir := filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig(configDir)
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize(configDir)

	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600 perms.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	cfg.Normalize(dir)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".calrem-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
