// Package repl runs the interactive read-eval-print loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Cyclone1070/fm/internal/command"
	"github.com/Cyclone1070/fm/internal/session"
)

const (
	ExitCommand = ".exit"
	HelpCommand = ".help"
)

const maxLineSize = 1024 * 1024

// dispatcher routes a parsed command to a handler.
type dispatcher interface {
	Dispatch(ctx context.Context, sess *session.Session, cmd command.Command) error
}

// console defines the output operations the driver needs.
type console interface {
	Welcome(username string)
	Farewell(username string)
	Location(dir string)
	InvalidInput()
	OperationFailed()
	Markdown(md string)
}

// Driver reads commands line by line and runs them one at a time.
type Driver struct {
	in         io.Reader
	dispatcher dispatcher
	out        console
	sess       *session.Session
	username   string
	logger     *slog.Logger
}

// NewDriver creates a new Driver with injected dependencies.
func NewDriver(
	in io.Reader,
	d dispatcher,
	out console,
	sess *session.Session,
	username string,
	logger *slog.Logger,
) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{
		in:         in,
		dispatcher: d,
		out:        out,
		sess:       sess,
		username:   username,
		logger:     logger,
	}
}

type readResult struct {
	line string
	err  error
}

// readLines feeds lines from r into a channel until r is exhausted or done is closed.
// A read error is sent as a final value; a clean EOF just closes the channel.
func readLines(r io.Reader, done <-chan struct{}) <-chan readResult {
	lines := make(chan readResult)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- readResult{line: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- readResult{err: err}:
			case <-done:
			}
		}
	}()
	return lines
}

// Run greets the operator and processes input until .exit, end of input, or
// cancellation of ctx. Each of these ends with the farewell line. Only a read
// error on the input is returned.
func (d *Driver) Run(ctx context.Context) error {
	d.out.Welcome(d.username)
	d.out.Location(d.sess.CurrentDir())

	done := make(chan struct{})
	defer close(done)
	lines := readLines(d.in, done)

	for {
		select {
		case <-ctx.Done():
			d.out.Farewell(d.username)
			return nil
		case res, ok := <-lines:
			if !ok {
				d.out.Farewell(d.username)
				return nil
			}
			if res.err != nil {
				d.out.Farewell(d.username)
				return res.err
			}
			if !d.execute(ctx, res.line) {
				d.out.Farewell(d.username)
				return nil
			}
		}
	}
}

// execute runs one input line and reports whether the loop should continue.
func (d *Driver) execute(ctx context.Context, line string) bool {
	cmd := command.Parse(line)
	switch cmd.Name {
	case ExitCommand:
		return false
	case HelpCommand:
		d.out.Markdown(HelpText)
		d.out.Location(d.sess.CurrentDir())
		return true
	}

	err := d.dispatcher.Dispatch(ctx, d.sess, cmd)
	if ctx.Err() != nil {
		// Interrupted mid-command; shutdown reports nothing further
		d.logger.Debug("command interrupted", "command", cmd.Name, "error", err)
		return false
	}
	d.report(cmd, err)
	d.out.Location(d.sess.CurrentDir())
	return true
}

// report maps err to one of the two user-visible messages and logs the cause.
func (d *Driver) report(cmd command.Command, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, command.ErrInvalidInput):
		d.logger.Debug("invalid input", "command", cmd.Name, "error", err)
		d.out.InvalidInput()
	default:
		d.logger.Debug("operation failed", "command", cmd.Name, "error", err)
		d.out.OperationFailed()
	}
}
