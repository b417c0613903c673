package fsutil

import (
	"context"
	"io"
)

// ContextReader stops a stream at the next chunk boundary once its context is done.
type ContextReader struct {
	ctx context.Context
	r   io.Reader
}

// NewContextReader wraps r so that reads fail with ctx.Err() after cancellation.
func NewContextReader(ctx context.Context, r io.Reader) *ContextReader {
	return &ContextReader{ctx: ctx, r: r}
}

func (c *ContextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
