package filesystem

import (
	"context"
	"os"
)

// fileSystem defines the filesystem operations the handler needs.
// Paths are always absolute by the time they reach it.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Touch(path string) error
	Rename(oldpath, newpath string) error
	Remove(path string) error
	CopyFile(ctx context.Context, src, dst string) error
}

// console defines the output operations the handler needs.
type console interface {
	Output(text string)
	Table(headers []string, rows [][]string)
}
