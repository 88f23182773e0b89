package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/bizdir/internal/directory"
)

// NotFoundError indicates a business was not found.
type NotFoundError struct {
	Type string // "business"
	ID   string // the ID that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// RequiredFieldsMessage is the form-level message shown when an add is
// rejected for a blank required field.
const RequiredFieldsMessage = "Name, location, and description are required fields."

// FormMessage returns the message a form shows for a rejected add.
// Missing required fields collapse into RequiredFieldsMessage; anything else
// (an unknown category) is reported as is.
func FormMessage(err error) string {
	var inputErr *directory.InputError
	if errors.As(err, &inputErr) {
		for _, field := range inputErr.Fields() {
			switch field {
			case "name", "location", "description":
				return RequiredFieldsMessage
			}
		}
	}
	return err.Error()
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
