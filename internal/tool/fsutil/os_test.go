package fsutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWriteCloser implements writeCloser for testing
type mockWriteCloser struct {
	buffer      *bytes.Buffer
	writeErr    error
	closeErr    error
	closeCalled bool
}

func newMockWriteCloser() *mockWriteCloser {
	return &mockWriteCloser{buffer: new(bytes.Buffer)}
}

func (m *mockWriteCloser) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	return m.buffer.Write(p)
}

func (m *mockWriteCloser) Close() error {
	m.closeCalled = true
	return m.closeErr
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCopyFile(t *testing.T) {
	t.Run("copies content and overwrites destination", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.txt")
		dst := filepath.Join(dir, "dst.txt")
		writeFile(t, src, "fresh")
		writeFile(t, dst, "stale content that is longer")

		err := NewOSFileSystem().CopyFile(context.Background(), src, dst)

		require.NoError(t, err)
		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "fresh", string(got))
	})

	t.Run("missing source does not create destination", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "dst.txt")

		err := NewOSFileSystem().CopyFile(context.Background(), filepath.Join(dir, "nope"), dst)

		var openErr *OpenError
		require.True(t, errors.As(err, &openErr))
		assert.ErrorIs(t, err, os.ErrNotExist)
		_, statErr := os.Stat(dst)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("write failure closes destination", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.txt")
		writeFile(t, src, "payload")

		mockFile := newMockWriteCloser()
		mockFile.writeErr = errors.New("disk full")

		fs := NewOSFileSystem()
		fs.create = func(name string) (writeCloser, error) {
			return mockFile, nil
		}

		err := fs.CopyFile(context.Background(), src, "/virtual/dst")

		var copyErr *CopyError
		require.True(t, errors.As(err, &copyErr))
		assert.True(t, mockFile.closeCalled)
	})

	t.Run("close failure is reported", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.txt")
		writeFile(t, src, "payload")

		mockFile := newMockWriteCloser()
		mockFile.closeErr = errors.New("flush failed")

		fs := NewOSFileSystem()
		fs.create = func(name string) (writeCloser, error) {
			return mockFile, nil
		}

		err := fs.CopyFile(context.Background(), src, "/virtual/dst")

		var closeErr *CloseError
		require.True(t, errors.As(err, &closeErr))
		assert.Equal(t, "payload", mockFile.buffer.String())
	})

	t.Run("cancelled context stops the stream", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.txt")
		writeFile(t, src, "payload")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewOSFileSystem().CopyFile(ctx, src, filepath.Join(dir, "dst.txt"))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "hello\nworld")

	content, err := NewOSFileSystem().ReadFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", string(content))

	_, err = NewOSFileSystem().ReadFile(context.Background(), filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTouch(t *testing.T) {
	t.Run("creates empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.txt")

		require.NoError(t, NewOSFileSystem().Touch(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("truncates existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "old.txt")
		writeFile(t, path, "content")

		require.NoError(t, NewOSFileSystem().Touch(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("missing parent fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")

		err := NewOSFileSystem().Touch(path)

		var createErr *CreateError
		assert.True(t, errors.As(err, &createErr))
	})
}

func TestRemoveAndRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "x")

	fs := NewOSFileSystem()
	require.NoError(t, fs.Rename(path, filepath.Join(dir, "b.txt")))
	require.NoError(t, fs.Remove(filepath.Join(dir, "b.txt")))

	var removeErr *RemoveError
	err := fs.Remove(filepath.Join(dir, "b.txt"))
	assert.True(t, errors.As(err, &removeErr))

	fs.rename = func(oldpath, newpath string) error { return os.ErrPermission }
	var renameErr *RenameError
	err = fs.Rename("a", "b")
	assert.True(t, errors.As(err, &renameErr))
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestListDir_ReportsSymlinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "target.txt"), "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	if err := os.Symlink(filepath.Join(dir, "target.txt"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	infos, err := NewOSFileSystem().ListDir(dir)
	require.NoError(t, err)

	modes := make(map[string]os.FileMode)
	for _, info := range infos {
		modes[info.Name()] = info.Mode()
	}
	assert.True(t, modes["sub"].IsDir())
	assert.True(t, modes["target.txt"].IsRegular())
	assert.NotZero(t, modes["link"]&os.ModeSymlink)
}
