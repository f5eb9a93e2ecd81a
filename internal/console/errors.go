package console

import "errors"

var (
	// ErrInvalidForm is returned when a submission fails local validation.
	ErrInvalidForm = errors.New("console: form has validation errors")
	// ErrBusy is returned when another submission for the same page is still in flight.
	ErrBusy = errors.New("console: submission already in progress")
	// ErrNoModal is returned when a submit arrives for a modal that is not open.
	ErrNoModal = errors.New("console: no matching modal open")
	// ErrUnknownField is returned by ChangeField for names the schema does not declare.
	ErrUnknownField = errors.New("console: unknown field")
	// ErrNotFound is returned when an entity is not present in the loaded list.
	ErrNotFound = errors.New("console: entity not found")
)

// userMessager is implemented by remote errors that carry a message meant for the operator.
type userMessager interface {
	UserMessage() string
}

// RemoteMessage returns the server supplied message carried by err, or fallback.
func RemoteMessage(err error, fallback string) string {
	var um userMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}
