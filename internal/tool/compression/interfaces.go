package compression

import (
	"context"
	"io"
)

// fileSystem defines the streaming file operations the handler needs.
type fileSystem interface {
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
}

// codec transforms one stream into another.
type codec interface {
	Compress(ctx context.Context, dst io.Writer, src io.Reader) error
	Decompress(ctx context.Context, dst io.Writer, src io.Reader) error
}
