// Package output provides structured output and error handling for the sprout CLI.
package output

import "errors"

// Exit codes:
// 0 = Success
// 1 = User error (canceled menu, bad config, bad template, bad arguments)
// 2 = System error (fetch failed, git failed, I/O error)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
	// Silent errors set the exit code without printing anything.
	Silent bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewSilentError creates an exit-code-1 error that is not reported to the
// user, wrapping cause. Used when the user backs out of the root menu.
func NewSilentError(cause error) *ExitError {
	msg := "canceled"
	if cause != nil {
		msg = cause.Error()
	}
	return &ExitError{
		Code:    ExitUserError,
		Message: msg,
		Cause:   cause,
		Silent:  true,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
// Use for: fetch failures, git operation failures, I/O errors.
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
// The cause is appended to the message.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message + ": " + cause.Error(),
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUserError
}

// IsSilent reports whether err should end the process without a message.
func IsSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Silent
}
