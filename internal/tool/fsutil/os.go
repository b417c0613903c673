package fsutil

import (
	"context"
	"io"
	"os"
)

// readCloser is the minimal interface for a readable file handle.
type readCloser interface {
	io.Reader
	Close() error
}

// writeCloser is the minimal interface for a writable file handle.
// This abstraction allows testing without depending on concrete *os.File.
type writeCloser interface {
	io.Writer
	Close() error
}

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
// It uses internal function fields to enable testability via functional injection.
// Every path it receives is expected to be absolute already.
type OSFileSystem struct {
	// Internal syscall wrappers for testability
	open   func(name string) (readCloser, error)
	create func(name string) (writeCloser, error)
	rename func(oldpath, newpath string) error
	remove func(name string) error
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		open: func(name string) (readCloser, error) {
			return os.Open(name)
		},
		create: func(name string) (writeCloser, error) {
			return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		},
		rename: os.Rename,
		remove: os.Remove,
	}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ListDir lists the immediate entries of a directory.
// Entry info is not followed through symlinks, so links report ModeSymlink.
func (r *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// ReadFile reads the whole file into memory, chunk by chunk in file order.
func (r *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	file, err := r.open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Cause: err}
	}
	defer file.Close()

	content, err := io.ReadAll(NewContextReader(ctx, file))
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}
	return content, nil
}

// Open opens a file for streaming reads.
func (r *OSFileSystem) Open(path string) (io.ReadCloser, error) {
	file, err := r.open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Cause: err}
	}
	return file, nil
}

// Create creates or truncates a file for streaming writes.
func (r *OSFileSystem) Create(path string) (io.WriteCloser, error) {
	file, err := r.create(path)
	if err != nil {
		return nil, &CreateError{Path: path, Cause: err}
	}
	return file, nil
}

// Touch creates an empty file, truncating any existing content.
func (r *OSFileSystem) Touch(path string) error {
	file, err := r.create(path)
	if err != nil {
		return &CreateError{Path: path, Cause: err}
	}
	if err := file.Close(); err != nil {
		return &CloseError{Path: path, Cause: err}
	}
	return nil
}

// Rename renames oldpath to newpath.
func (r *OSFileSystem) Rename(oldpath, newpath string) error {
	if err := r.rename(oldpath, newpath); err != nil {
		return &RenameError{Old: oldpath, New: newpath, Cause: err}
	}
	return nil
}

// Remove removes a single file or empty directory.
func (r *OSFileSystem) Remove(path string) error {
	if err := r.remove(path); err != nil {
		return &RemoveError{Path: path, Cause: err}
	}
	return nil
}

// CopyFile streams the bytes of src into dst, creating or truncating dst.
// The source is opened first, so a missing source leaves dst untouched.
func (r *OSFileSystem) CopyFile(ctx context.Context, src, dst string) error {
	in, err := r.open(src)
	if err != nil {
		return &OpenError{Path: src, Cause: err}
	}
	defer in.Close()

	out, err := r.create(dst)
	if err != nil {
		return &CreateError{Path: dst, Cause: err}
	}

	if _, err := io.Copy(out, NewContextReader(ctx, in)); err != nil {
		_ = out.Close()
		return &CopyError{Src: src, Dst: dst, Cause: err}
	}

	// Close flushes the destination; its error is the last chance to see a failed write
	if err := out.Close(); err != nil {
		return &CloseError{Path: dst, Cause: err}
	}

	return nil
}
