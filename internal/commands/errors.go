package commands

import "fmt"

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input or usage.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// UserErrorf creates a user-facing error from a format string.
func UserErrorf(format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// Termination is returned by a handler to end the session. The process
// should exit with Code once the session has cleaned up.
type Termination struct {
	Reason string
	Code   int
}

func (t *Termination) Error() string {
	return fmt.Sprintf("session terminated: %s (exit code %d)", t.Reason, t.Code)
}

// Terminate creates a termination signal.
func Terminate(reason string, code int) *Termination {
	return &Termination{Reason: reason, Code: code}
}
