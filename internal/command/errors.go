package command

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	// ErrInvalidInput covers missing arguments and unrecognized commands.
	// It is reported before any filesystem access happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOperationFailed covers every failure surfaced by a provider.
	ErrOperationFailed = errors.New("operation failed")

	// ErrSameFile rejects copy, move and codec operations whose source and
	// destination resolve to the same path.
	ErrSameFile = errors.New("source and destination are the same file")
)

// -- Error Types --

// OperationError records which operation failed on which path.
// It matches ErrOperationFailed under errors.Is.
type OperationError struct {
	Op    string
	Path  string
	Cause error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *OperationError) Unwrap() error { return e.Cause }

func (e *OperationError) Is(target error) bool { return target == ErrOperationFailed }

// Fail wraps cause as an OperationError.
func Fail(op, path string, cause error) error {
	return &OperationError{Op: op, Path: path, Cause: cause}
}

// InvalidInputError names the command whose arguments were rejected.
type InvalidInputError struct {
	Command string
	Reason  string
}

func (e *InvalidInputError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input for %s: %s", e.Command, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Invalid returns an InvalidInputError for cmd.
func Invalid(cmd, reason string) error {
	return &InvalidInputError{Command: cmd, Reason: reason}
}
