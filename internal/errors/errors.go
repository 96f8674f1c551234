// Package errors provides the error taxonomy shared by the authoring tools.
//
// Every failure is classified as an input, output, processing or
// configuration error. The classification survives wrapping, so callers
// can decide with Is whether a failure aborts the run or only the current
// item.
package errors

import (
	"errors"
	"fmt"
)

// Error categories.
var (
	// ErrInput marks precondition violations the caller must fix:
	// wrong path, not a file, no matching headings.
	ErrInput = errors.New("input error")

	// ErrOutput marks failures creating directories or writing files.
	ErrOutput = errors.New("output error")

	// ErrProcessing marks a failure confined to one item of a batch.
	ErrProcessing = errors.New("processing error")

	// ErrConfiguration marks invalid settings or an unreadable config file.
	ErrConfiguration = errors.New("configuration error")
)

// Error is a categorized error. Its message is the user-facing text, so
// it can be printed as-is by the command line front-ends.
type Error struct {
	Kind    error
	Message string
	Err     error
}

// Error returns the message, followed by the cause when there is one.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the category of e.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// Input creates an input error with the given message.
func Input(format string, args ...any) error {
	return &Error{Kind: ErrInput, Message: fmt.Sprintf(format, args...)}
}

// InputWithCause creates an input error wrapping cause.
func InputWithCause(cause error, format string, args ...any) error {
	return &Error{Kind: ErrInput, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Output creates an output error wrapping cause.
func Output(cause error, format string, args ...any) error {
	return &Error{Kind: ErrOutput, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Processing creates a per-item processing error.
func Processing(format string, args ...any) error {
	return &Error{Kind: ErrProcessing, Message: fmt.Sprintf(format, args...)}
}

// ProcessingWithCause creates a per-item processing error wrapping cause.
func ProcessingWithCause(cause error, format string, args ...any) error {
	return &Error{Kind: ErrProcessing, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Configuration creates a configuration error.
func Configuration(format string, args ...any) error {
	return &Error{Kind: ErrConfiguration, Message: fmt.Sprintf(format, args...)}
}

// ConfigurationWithCause creates a configuration error wrapping cause.
func ConfigurationWithCause(cause error, format string, args ...any) error {
	return &Error{Kind: ErrConfiguration, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Wrap prefixes err with context, keeping its category and cause
// reachable through Is. A nil err stays nil.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
