package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Evaaaz/calendar-reminder-app/internal/constants"
	"github.com/Evaaaz/calendar-reminder-app/internal/keyring"
	"github.com/Evaaaz/calendar-reminder-app/internal/logger"
)

// ResolvePassword returns the CalDAV password from the environment (a .env
// file in the working directory is honored) or, failing that, from the OS
// keyring. An empty result means no credential is configured, which is only
// an error once a sink actually needs it.
func ResolvePassword() string {
	// Best effort: absence of a .env file is the normal case.
	_ = godotenv.Load()

	if pw := os.Getenv(constants.PasswordEnvVar); pw != "" {
		return pw
	}

	pw, err := keyring.GetPassword()
	if err != nil {
		if err != keyring.ErrNotFound {
			logger.Debug("keyring lookup failed", "error", err)
		}
		return ""
	}
	return pw
}
