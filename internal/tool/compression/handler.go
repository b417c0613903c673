// Package compression implements the compress and decompress commands.
package compression

import (
	"context"
	"io"

	"github.com/Cyclone1070/fm/internal/command"
	"github.com/Cyclone1070/fm/internal/session"
)

// Handler streams files through a codec.
type Handler struct {
	fs    fileSystem
	codec codec
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(fs fileSystem, codec codec) *Handler {
	return &Handler{fs: fs, codec: codec}
}

func (h *Handler) Name() string { return "compression" }

func (h *Handler) Commands() []string { return []string{"compress", "decompress"} }

// Handle executes compress <src> <dest> and decompress <src> <dest>.
func (h *Handler) Handle(ctx context.Context, sess *session.Session, cmd command.Command) (command.Result, error) {
	var transform func(ctx context.Context, dst io.Writer, src io.Reader) error
	switch cmd.Name {
	case "compress":
		transform = h.codec.Compress
	case "decompress":
		transform = h.codec.Decompress
	default:
		return command.Unclaimed, nil
	}
	return command.Claimed, h.run(ctx, sess, cmd, transform)
}

// run pipes src through transform into dest. A failed run leaves any partial
// destination on disk.
func (h *Handler) run(
	ctx context.Context,
	sess *session.Session,
	cmd command.Command,
	transform func(ctx context.Context, dst io.Writer, src io.Reader) error,
) error {
	args, err := cmd.Require(2)
	if err != nil {
		return err
	}

	src, dst := sess.Resolve(args[0]), sess.Resolve(args[1])
	if src == dst {
		return command.Fail(cmd.Name, src, command.ErrSameFile)
	}

	in, err := h.fs.Open(src)
	if err != nil {
		return command.Fail(cmd.Name, src, err)
	}
	defer in.Close()

	out, err := h.fs.Create(dst)
	if err != nil {
		return command.Fail(cmd.Name, dst, err)
	}

	if err := transform(ctx, out, in); err != nil {
		_ = out.Close()
		return command.Fail(cmd.Name, src, err)
	}
	if err := out.Close(); err != nil {
		return command.Fail(cmd.Name, dst, err)
	}
	return nil
}
