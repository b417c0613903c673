// Package mocks provides in-memory test doubles for the filesystem provider.
package mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileInfo implements os.FileInfo
type MockFileInfo struct {
	NameVal string
	SizeVal int64
	ModeVal os.FileMode
}

func (f *MockFileInfo) Name() string       { return f.NameVal }
func (f *MockFileInfo) Size() int64        { return f.SizeVal }
func (f *MockFileInfo) Mode() os.FileMode  { return f.ModeVal }
func (f *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (f *MockFileInfo) IsDir() bool        { return f.ModeVal.IsDir() }
func (f *MockFileInfo) Sys() any           { return nil }

// MockFileHandle is a writable handle whose content lands in the filesystem on Close.
type MockFileHandle struct {
	Fs      *MockFileSystem
	Path    string
	Content bytes.Buffer
	Closed  bool
}

// Write implements io.Writer
func (h *MockFileHandle) Write(data []byte) (int, error) {
	h.Fs.Mu.Lock()
	defer h.Fs.Mu.Unlock()

	if err, ok := h.Fs.OpErrors["Write"]; ok {
		return 0, err
	}

	if h.Closed {
		return 0, fmt.Errorf("file is closed")
	}

	return h.Content.Write(data)
}

// Close implements io.Closer
func (h *MockFileHandle) Close() error {
	h.Fs.Mu.Lock()
	defer h.Fs.Mu.Unlock()

	if h.Closed {
		return fmt.Errorf("file already closed")
	}
	h.Closed = true

	// Written bytes are visible even when Close reports an error
	h.Fs.files[h.Path] = bytes.Clone(h.Content.Bytes())

	if err, ok := h.Fs.OpErrors["Close"]; ok {
		return err
	}
	return nil
}

// MockFileSystem implements the filesystem provider with in-memory storage.
// This is the comprehensive mock for handler tests.
type MockFileSystem struct {
	Mu       sync.RWMutex
	files    map[string][]byte
	modes    map[string]os.FileMode
	Errors   map[string]error // path -> error to return
	OpErrors map[string]error // operation -> error to return
	Calls    []string         // operations in call order
}

// NewMockFileSystem creates a new mock filesystem containing only the root directory.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:    make(map[string][]byte),
		modes:    map[string]os.FileMode{"/": os.ModeDir | 0o755},
		Errors:   make(map[string]error),
		OpErrors: make(map[string]error),
	}
}

// SetError sets an error to return for a specific path
func (f *MockFileSystem) SetError(path string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Errors[path] = err
}

// SetOperationError sets an error to return for a specific operation.
func (f *MockFileSystem) SetOperationError(operation string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.OpErrors[operation] = err
}

// CreateFile creates a file with content, creating missing parent directories.
func (f *MockFileSystem) CreateFile(path string, content []byte) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.ensureDirs(filepath.Dir(path))
	f.files[path] = bytes.Clone(content)
	f.modes[path] = 0o644
}

// CreateDir creates a directory and any missing parents.
func (f *MockFileSystem) CreateDir(path string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.ensureDirs(path)
}

// CreateSymlink creates a symlink entry. Links are listed but never followed.
func (f *MockFileSystem) CreateSymlink(path string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.ensureDirs(filepath.Dir(path))
	f.modes[path] = os.ModeSymlink | 0o777
}

// Content returns the content of a file and whether it exists.
func (f *MockFileSystem) Content(path string) ([]byte, bool) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()
	content, ok := f.files[path]
	return content, ok
}

// Exists reports whether any entry exists at path.
func (f *MockFileSystem) Exists(path string) bool {
	f.Mu.RLock()
	defer f.Mu.RUnlock()
	_, ok := f.modes[path]
	return ok
}

func (f *MockFileSystem) ensureDirs(path string) {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if _, ok := f.modes[p]; !ok {
			f.modes[p] = os.ModeDir | 0o755
		}
		if p == filepath.Dir(p) {
			return
		}
	}
}

// check records the call and returns any injected error.
// Callers must hold the lock.
func (f *MockFileSystem) check(op, path string) error {
	f.Calls = append(f.Calls, op)
	if err, ok := f.OpErrors[op]; ok {
		return err
	}
	if err, ok := f.Errors[path]; ok {
		return err
	}
	return nil
}

func notExist(op, path string) error {
	return &os.PathError{Op: op, Path: path, Err: os.ErrNotExist}
}

func (f *MockFileSystem) info(path string) *MockFileInfo {
	mode := f.modes[path]
	return &MockFileInfo{NameVal: filepath.Base(path), SizeVal: int64(len(f.files[path])), ModeVal: mode}
}

func (f *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err := f.check("Stat", path); err != nil {
		return nil, err
	}
	if _, ok := f.modes[path]; !ok {
		return nil, notExist("stat", path)
	}
	return f.info(path), nil
}

func (f *MockFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err := f.check("ListDir", path); err != nil {
		return nil, err
	}
	if !f.modes[path].IsDir() {
		return nil, notExist("readdirent", path)
	}

	var names []string
	for p := range f.modes {
		if p != path && filepath.Dir(p) == path {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	infos := make([]os.FileInfo, 0, len(names))
	for _, p := range names {
		infos = append(infos, f.info(p))
	}
	return infos, nil
}

func (f *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	r, err := f.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (f *MockFileSystem) Open(path string) (io.ReadCloser, error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err := f.check("Open", path); err != nil {
		return nil, err
	}
	content, ok := f.files[path]
	if !ok {
		return nil, notExist("open", path)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (f *MockFileSystem) Create(path string) (io.WriteCloser, error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err := f.check("Create", path); err != nil {
		return nil, err
	}
	if !f.modes[filepath.Dir(path)].IsDir() {
		return nil, notExist("open", path)
	}
	if f.modes[path].IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: fmt.Errorf("is a directory")}
	}
	f.files[path] = nil
	f.modes[path] = 0o644
	return &MockFileHandle{Fs: f, Path: path}, nil
}

func (f *MockFileSystem) Touch(path string) error {
	w, err := f.Create(path)
	if err != nil {
		return err
	}
	return w.Close()
}

func (f *MockFileSystem) Rename(oldpath, newpath string) error {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err := f.check("Rename", oldpath); err != nil {
		return err
	}
	mode, ok := f.modes[oldpath]
	if !ok {
		return notExist("rename", oldpath)
	}
	if mode.IsDir() {
		return fmt.Errorf("rename of directories is not supported by the mock")
	}
	f.modes[newpath] = mode
	f.files[newpath] = f.files[oldpath]
	delete(f.modes, oldpath)
	delete(f.files, oldpath)
	return nil
}

func (f *MockFileSystem) Remove(path string) error {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err := f.check("Remove", path); err != nil {
		return err
	}
	if _, ok := f.modes[path]; !ok {
		return notExist("remove", path)
	}
	for p := range f.modes {
		if p != path && strings.HasPrefix(p, path+string(filepath.Separator)) {
			return &os.PathError{Op: "remove", Path: path, Err: fmt.Errorf("directory not empty")}
		}
	}
	delete(f.modes, path)
	delete(f.files, path)
	return nil
}

func (f *MockFileSystem) CopyFile(ctx context.Context, src, dst string) error {
	in, err := f.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := f.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
