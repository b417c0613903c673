// Package command turns input lines into commands and routes them to the
// capability handlers that execute them.
package command

import (
	"context"
	"strings"

	"github.com/Cyclone1070/fm/internal/session"
)

// Command is a single parsed input line.
type Command struct {
	Name string
	Args []string
}

// Parse tokenizes line into a Command.
// An empty line yields a Command with an empty Name.
func Parse(line string) Command {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Command{}
	}
	return Command{Name: tokens[0], Args: tokens[1:]}
}

// Arg returns the i-th argument and whether it was given.
func (c Command) Arg(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	return c.Args[i], true
}

// Require returns the first n arguments, or an invalid-input error when fewer were given.
func (c Command) Require(n int) ([]string, error) {
	if len(c.Args) < n {
		return nil, Invalid(c.Name, "missing arguments")
	}
	return c.Args[:n], nil
}

// HasFlag reports whether flag appears among the arguments.
func (c Command) HasFlag(flag string) bool {
	for _, arg := range c.Args {
		if arg == flag {
			return true
		}
	}
	return false
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result tells the dispatcher whether a handler executed a command.
type Result int

const (
	// Unclaimed means the command is not one of the handler's; try the next handler.
	Unclaimed Result = iota
	// Claimed means the handler executed the command, successfully or not.
	Claimed
)

func (r Result) String() string {
	if r == Claimed {
		return "claimed"
	}
	return "unclaimed"
}

// Handler is a capability provider.
// Handlers keep no state of their own; everything they change lives in the
// session passed to each call.
type Handler interface {
	// Name identifies the handler in logs.
	Name() string

	// Commands lists the command names the handler recognizes.
	Commands() []string

	// Handle executes cmd when it is one of the handler's commands.
	// It returns Unclaimed without side effects otherwise. A non-nil error is
	// only meaningful together with Claimed.
	Handle(ctx context.Context, sess *session.Session, cmd Command) (Result, error)
}
