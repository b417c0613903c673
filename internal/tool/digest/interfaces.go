package digest

import (
	"context"
	"io"
)

// fileOpener opens files for streaming reads.
type fileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

// hasher computes a hex digest over a stream.
type hasher interface {
	ComputeStream(ctx context.Context, r io.Reader) (string, error)
}

// console prints the digest.
type console interface {
	Highlight(text string)
}
