package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/Evaaaz/calendar-reminder-app/internal/constants"
)

var (
	// ErrNotFound is returned when no password is stored in the keyring
	ErrNotFound = errors.New("password not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetPassword retrieves the CalDAV password from the OS keyring.
// Returns ErrNotFound if nothing is stored.
func GetPassword() (string, error) {
	pw, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return pw, nil
}

// SetPassword stores the CalDAV password in the OS keyring.
func SetPassword(pw string) error {
	if pw == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, pw); err != nil {
		return fmt.Errorf("failed to store password in keyring: %w", err)
	}
	return nil
}

// DeletePassword removes the CalDAV password from the OS keyring.
func DeletePassword() error {
	if err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser); err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}
