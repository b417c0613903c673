package fsutil

import (
	"fmt"
)

// OpenError is returned when opening a file for reading fails.
type OpenError struct {
	Path  string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Path, e.Cause)
}

func (e *OpenError) Unwrap() error {
	return e.Cause
}

func (e *OpenError) IOError() bool {
	return true
}

// ReadError is returned when reading an opened file fails.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

func (e *ReadError) IOError() bool {
	return true
}

// CreateError is returned when creating or truncating a file fails.
type CreateError struct {
	Path  string
	Cause error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create %s: %v", e.Path, e.Cause)
}

func (e *CreateError) Unwrap() error {
	return e.Cause
}

func (e *CreateError) IOError() bool {
	return true
}

// CopyError is returned when streaming bytes between two files fails.
type CopyError struct {
	Src   string
	Dst   string
	Cause error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy %s to %s: %v", e.Src, e.Dst, e.Cause)
}

func (e *CopyError) Unwrap() error {
	return e.Cause
}

func (e *CopyError) IOError() bool {
	return true
}

// CloseError is returned when closing a written file fails.
type CloseError struct {
	Path  string
	Cause error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("failed to close %s: %v", e.Path, e.Cause)
}

func (e *CloseError) Unwrap() error {
	return e.Cause
}

func (e *CloseError) IOError() bool {
	return true
}

// RenameError is returned when renaming a file fails.
type RenameError struct {
	Old   string
	New   string
	Cause error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("failed to rename %s to %s: %v", e.Old, e.New, e.Cause)
}

func (e *RenameError) Unwrap() error {
	return e.Cause
}

func (e *RenameError) IOError() bool {
	return true
}

// RemoveError is returned when removing a file fails.
type RemoveError struct {
	Path  string
	Cause error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("failed to remove %s: %v", e.Path, e.Cause)
}

func (e *RemoveError) Unwrap() error {
	return e.Cause
}

func (e *RemoveError) IOError() bool {
	return true
}
