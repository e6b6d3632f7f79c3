package handlers

import (
	"errors"
	"fmt"

	ds "github.com/oaiiae/contacts-bot/datastores"
)

const (
	msgInvalidPhone    = "Invalid phone number format."
	msgInvalidBirthday = "Invalid date format. Should be DD.MM.YYYY"
	msgInvalidArgument = "Invalid command or argument. Please try again."
)

// ErrorMessage returns the message shown in place of err when a command
// may recover from it.
func ErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ds.ErrInvalidPhone):
		return msgInvalidPhone, true
	case errors.Is(err, ds.ErrInvalidBirthday):
		return msgInvalidBirthday, true
	case errors.Is(err, ds.ErrObjectNotFound),
		errors.Is(err, ds.ErrInvalidName),
		errors.Is(err, ds.ErrInvalidValue):
		return msgInvalidArgument, true
	default:
		return "", false
	}
}

func noContact(name string) string {
	return fmt.Sprintf("There is no contact with the name '%s'", name)
}
