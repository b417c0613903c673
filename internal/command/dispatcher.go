package command

import (
	"context"
	"log/slog"

	"github.com/Cyclone1070/fm/internal/session"
)

// Dispatcher offers each command to an ordered chain of handlers.
// The first handler that claims a command wins; list order is the only priority.
type Dispatcher struct {
	handlers []Handler
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher over handlers, kept in the given order.
func NewDispatcher(logger *slog.Logger, handlers ...Handler) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		handlers: handlers,
		logger:   logger,
	}
}

// Handlers returns the handler chain in dispatch order.
func (d *Dispatcher) Handlers() []Handler {
	return d.handlers
}

// Dispatch routes cmd to the first handler that claims it.
// It returns ErrInvalidInput when the command name is empty or no handler claims it,
// and otherwise whatever the claiming handler returned.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *session.Session, cmd Command) error {
	if cmd.Name == "" {
		return Invalid("", "empty command")
	}

	for _, h := range d.handlers {
		result, err := h.Handle(ctx, sess, cmd)
		if result == Unclaimed {
			continue
		}
		d.logger.Debug("command handled", "command", cmd.Name, "handler", h.Name(), "error", err)
		return err
	}

	return Invalid(cmd.Name, "unknown command")
}
