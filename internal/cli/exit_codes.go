package cli

import "fmt"

// Exit codes for CLI commands
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitValidationFailed indicates the document has validation errors
	ExitValidationFailed = 1

	// ExitOperationFailed indicates the operation itself failed
	// (unreadable source file, write failure)
	ExitOperationFailed = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// isExitError reports whether err carries an explicit exit code.
func isExitError(err error) bool {
	_, ok := err.(*exitError)
	return ok
}

// ExitCode returns the exit code from an error. Errors without an explicit
// code come from cobra's argument parsing and map to ExitInvalidArguments.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitInvalidArguments
}
