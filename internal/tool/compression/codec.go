package compression

import (
	"context"
	"fmt"
	"io"

	"github.com/Cyclone1070/fm/internal/tool/fsutil"
	"github.com/andybalholm/brotli"
)

// Codec streams data through brotli.
type Codec struct {
	level int
}

// NewCodec creates a codec compressing at the given brotli quality.
func NewCodec(level int) *Codec {
	return &Codec{level: level}
}

// Compress writes the brotli encoding of src to dst.
func (c *Codec) Compress(ctx context.Context, dst io.Writer, src io.Reader) error {
	w := brotli.NewWriterLevel(dst, c.level)
	if _, err := io.Copy(w, fsutil.NewContextReader(ctx, src)); err != nil {
		_ = w.Close()
		return &CodecError{Op: "compress", Cause: err}
	}
	// Close writes the final block
	if err := w.Close(); err != nil {
		return &CodecError{Op: "compress", Cause: err}
	}
	return nil
}

// Decompress writes the decoding of the brotli stream src to dst.
func (c *Codec) Decompress(ctx context.Context, dst io.Writer, src io.Reader) error {
	r := brotli.NewReader(fsutil.NewContextReader(ctx, src))
	if _, err := io.Copy(dst, r); err != nil {
		return &CodecError{Op: "decompress", Cause: err}
	}
	return nil
}

// CodecError is returned when a stream cannot be encoded or decoded.
type CodecError struct {
	Op    string
	Cause error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *CodecError) Unwrap() error {
	return e.Cause
}
