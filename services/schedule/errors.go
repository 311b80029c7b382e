package schedule

import "fmt"

// FormatError reports a malformed "HH:MM" time string or an out-of-range
// component. It is fatal to the current pass: a session record carrying a
// bad clock string is a data-integrity violation, not a runtime condition.
type FormatError struct {
	Code    string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewFormatError(msg string) error {
	return &FormatError{
		Code:    "formatError",
		Message: msg,
	}
}

// ExhaustedInputError reports that a resource pool was empty when a
// placement required a participant from it.
type ExhaustedInputError struct {
	Code    string
	Message string
}

func (e *ExhaustedInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewExhaustedInputError(msg string) error {
	return &ExhaustedInputError{
		Code:    "exhaustedInput",
		Message: msg,
	}
}
