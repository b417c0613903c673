// Package digest implements the hash command.
package digest

import (
	"context"

	"github.com/Cyclone1070/fm/internal/command"
	"github.com/Cyclone1070/fm/internal/session"
)

// Handler prints the digest of a file.
type Handler struct {
	fs     fileOpener
	hasher hasher
	out    console
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(fs fileOpener, hasher hasher, out console) *Handler {
	return &Handler{fs: fs, hasher: hasher, out: out}
}

func (h *Handler) Name() string { return "digest" }

func (h *Handler) Commands() []string { return []string{"hash"} }

// Handle executes hash <path>.
func (h *Handler) Handle(ctx context.Context, sess *session.Session, cmd command.Command) (command.Result, error) {
	if cmd.Name != "hash" {
		return command.Unclaimed, nil
	}

	args, err := cmd.Require(1)
	if err != nil {
		return command.Claimed, err
	}

	path := sess.Resolve(args[0])
	file, err := h.fs.Open(path)
	if err != nil {
		return command.Claimed, command.Fail("hash", path, err)
	}
	defer file.Close()

	sum, err := h.hasher.ComputeStream(ctx, file)
	if err != nil {
		return command.Claimed, command.Fail("hash", path, err)
	}

	h.out.Highlight(sum)
	return command.Claimed, nil
}
