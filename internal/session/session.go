// Package session holds the state shared by every command for the life of the process.
package session

import (
	"path/filepath"
)

// Session tracks the virtual working directory of the file manager.
// It is independent of the process working directory and is only read and
// written between commands, so it carries no locking.
type Session struct {
	currentDir string
}

// New creates a session rooted at dir.
func New(dir string) *Session {
	return &Session{currentDir: filepath.Clean(dir)}
}

// CurrentDir returns the current directory.
func (s *Session) CurrentDir() string {
	return s.currentDir
}

// SetCurrentDir sets the current directory.
// No validation is performed here; callers stat the target first.
func (s *Session) SetCurrentDir(dir string) {
	s.currentDir = filepath.Clean(dir)
}

// Resolve turns path into an absolute, cleaned path.
// Absolute paths pass through; relative paths are joined with the current directory.
func (s *Session) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.currentDir, path)
}

// Parent returns the parent of the current directory.
// The parent of the filesystem root is the root itself.
func (s *Session) Parent() string {
	return filepath.Dir(s.currentDir)
}
