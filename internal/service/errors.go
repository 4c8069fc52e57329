package service

import "strings"

// ValidationError reports bad caller input. Message is safe to return to the
// client; Missing lists required fields that were absent, when that is the
// reason for rejection.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return e.Message + ": " + strings.Join(e.Missing, ", ")
	}
	return e.Message
}

// invalid builds a ValidationError with just a message.
func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// missingFields builds a ValidationError listing absent required fields.
func missingFields(message string, fields []string) *ValidationError {
	return &ValidationError{Message: message, Missing: fields}
}
