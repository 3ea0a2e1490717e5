package cli

import (
	"fmt"

	"github.com/Evaaaz/calendar-reminder-app/internal/keyring"
)

type CredsSetCmd struct {
	Password string `arg:"" help:"CalDAV password to store in the OS keyring."`
}

func (c *CredsSetCmd) Run(_ *Context) error {
	if err := keyring.SetPassword(c.Password); err != nil {
		return err
	}
	fmt.Println("Password stored in OS keyring")
	return nil
}

type CredsClearCmd struct{}

func (c *CredsClearCmd) Run(_ *Context) error {
	if err := keyring.DeletePassword(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No password stored")
			return nil
		}
		return err
	}
	fmt.Println("Password removed from OS keyring")
	return nil
}
