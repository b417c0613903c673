// Package filesystem implements navigation and file manipulation commands.
package filesystem

import (
	"context"
	"path/filepath"

	"github.com/Cyclone1070/fm/internal/command"
	"github.com/Cyclone1070/fm/internal/config"
	"github.com/Cyclone1070/fm/internal/session"
	"golang.org/x/text/collate"
)

var commands = []string{"up", "cd", "ls", "cat", "add", "rn", "rm", "cp", "mv"}

// Handler executes the filesystem commands against the session directory.
type Handler struct {
	fs                 fileSystem
	out                console
	collator           *collate.Collator
	resolveRenamePaths bool
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(fs fileSystem, out console, cfg *config.Config) *Handler {
	return &Handler{
		fs:                 fs,
		out:                out,
		collator:           NewCollator(cfg.Listing.Locale),
		resolveRenamePaths: cfg.Filesystem.ResolveRenamePaths,
	}
}

func (h *Handler) Name() string { return "filesystem" }

func (h *Handler) Commands() []string { return commands }

// Handle executes cmd if it is a filesystem command.
func (h *Handler) Handle(ctx context.Context, sess *session.Session, cmd command.Command) (command.Result, error) {
	var err error
	switch cmd.Name {
	case "up":
		sess.SetCurrentDir(sess.Parent())
	case "cd":
		err = h.cd(sess, cmd)
	case "ls":
		err = h.ls(sess)
	case "cat":
		err = h.cat(ctx, sess, cmd)
	case "add":
		err = h.add(sess, cmd)
	case "rn":
		err = h.rn(sess, cmd)
	case "rm":
		err = h.rm(sess, cmd)
	case "cp":
		err = h.cp(ctx, sess, cmd)
	case "mv":
		err = h.mv(ctx, sess, cmd)
	default:
		return command.Unclaimed, nil
	}
	return command.Claimed, err
}

func (h *Handler) cd(sess *session.Session, cmd command.Command) error {
	args, err := cmd.Require(1)
	if err != nil {
		return err
	}

	target := sess.Resolve(args[0])
	info, err := h.fs.Stat(target)
	if err != nil {
		return command.Fail("cd", target, err)
	}
	if !info.IsDir() {
		return command.Fail("cd", target, &NotDirectoryError{Path: target})
	}

	sess.SetCurrentDir(target)
	return nil
}

func (h *Handler) ls(sess *session.Session) error {
	dir := sess.CurrentDir()
	infos, err := h.fs.ListDir(dir)
	if err != nil {
		return command.Fail("ls", dir, err)
	}

	entries := BuildListing(infos, h.collator)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Type})
	}
	h.out.Table([]string{"Name", "Type"}, rows)
	return nil
}

// cat buffers the whole file before printing it.
func (h *Handler) cat(ctx context.Context, sess *session.Session, cmd command.Command) error {
	args, err := cmd.Require(1)
	if err != nil {
		return err
	}

	path := sess.Resolve(args[0])
	content, err := h.fs.ReadFile(ctx, path)
	if err != nil {
		return command.Fail("cat", path, err)
	}

	h.out.Output(string(content))
	return nil
}

func (h *Handler) add(sess *session.Session, cmd command.Command) error {
	args, err := cmd.Require(1)
	if err != nil {
		return err
	}

	path := sess.Resolve(args[0])
	if err := h.fs.Touch(path); err != nil {
		return command.Fail("add", path, err)
	}
	return nil
}

// rn uses both paths as typed unless rename path resolution is enabled.
func (h *Handler) rn(sess *session.Session, cmd command.Command) error {
	args, err := cmd.Require(2)
	if err != nil {
		return err
	}

	oldPath, newPath := args[0], args[1]
	if h.resolveRenamePaths {
		oldPath, newPath = sess.Resolve(oldPath), sess.Resolve(newPath)
	}

	if err := h.fs.Rename(oldPath, newPath); err != nil {
		return command.Fail("rn", oldPath, err)
	}
	return nil
}

func (h *Handler) rm(sess *session.Session, cmd command.Command) error {
	args, err := cmd.Require(1)
	if err != nil {
		return err
	}

	path := sess.Resolve(args[0])
	if err := h.fs.Remove(path); err != nil {
		return command.Fail("rm", path, err)
	}
	return nil
}

// copyTarget resolves src and the destination file destDir/basename(src).
func copyTarget(sess *session.Session, cmd command.Command) (src, dst string, err error) {
	args, err := cmd.Require(2)
	if err != nil {
		return "", "", err
	}

	src = sess.Resolve(args[0])
	dst = filepath.Join(sess.Resolve(args[1]), filepath.Base(src))
	if src == dst {
		return "", "", command.Fail(cmd.Name, src, command.ErrSameFile)
	}
	return src, dst, nil
}

func (h *Handler) cp(ctx context.Context, sess *session.Session, cmd command.Command) error {
	src, dst, err := copyTarget(sess, cmd)
	if err != nil {
		return err
	}

	if err := h.fs.CopyFile(ctx, src, dst); err != nil {
		return command.Fail("cp", src, err)
	}
	return nil
}

// mv copies then removes the source. A failed remove leaves both files in place.
func (h *Handler) mv(ctx context.Context, sess *session.Session, cmd command.Command) error {
	src, dst, err := copyTarget(sess, cmd)
	if err != nil {
		return err
	}

	if err := h.fs.CopyFile(ctx, src, dst); err != nil {
		return command.Fail("mv", src, err)
	}
	if err := h.fs.Remove(src); err != nil {
		return command.Fail("mv", src, err)
	}
	return nil
}
