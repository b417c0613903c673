// Package sysinfo implements the os command.
package sysinfo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Cyclone1070/fm/internal/command"
	"github.com/Cyclone1070/fm/internal/session"
)

// Flags recognized by os, in output order.
const (
	FlagEOL          = "--EOL"
	FlagCPUs         = "--cpus"
	FlagHomeDir      = "--homedir"
	FlagUsername     = "--username"
	FlagArchitecture = "--architecture"
)

// console defines the output operations the handler needs.
type console interface {
	Println(text string)
	Table(headers []string, rows [][]string)
}

// Handler prints host environment information.
type Handler struct {
	host HostInfo
	out  console
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(host HostInfo, out console) *Handler {
	return &Handler{host: host, out: out}
}

func (h *Handler) Name() string { return "sysinfo" }

func (h *Handler) Commands() []string { return []string{"os"} }

// Handle executes os with one or more flags. Each recognized flag prints once,
// in the fixed flag order, whatever order it was typed in.
func (h *Handler) Handle(ctx context.Context, sess *session.Session, cmd command.Command) (command.Result, error) {
	if cmd.Name != "os" {
		return command.Unclaimed, nil
	}

	sections := []struct {
		flag  string
		print func(ctx context.Context) error
	}{
		{FlagEOL, h.printEOL},
		{FlagCPUs, h.printCPUs},
		{FlagHomeDir, h.printHomeDir},
		{FlagUsername, h.printUsername},
		{FlagArchitecture, h.printArchitecture},
	}

	recognized := 0
	for _, s := range sections {
		if cmd.HasFlag(s.flag) {
			recognized++
		}
	}
	if recognized == 0 {
		return command.Claimed, command.Invalid(cmd.Name, "no recognized flag")
	}

	for _, s := range sections {
		if !cmd.HasFlag(s.flag) {
			continue
		}
		if err := s.print(ctx); err != nil {
			return command.Claimed, command.Fail("os", s.flag, err)
		}
	}
	return command.Claimed, nil
}

func (h *Handler) printEOL(context.Context) error {
	h.out.Println(strconv.Quote(h.host.EOL()))
	return nil
}

func (h *Handler) printCPUs(ctx context.Context) error {
	cpus, err := h.host.CPUs(ctx)
	if err != nil {
		return err
	}

	h.out.Println(fmt.Sprintf("The host machine has %d CPUs:", len(cpus)))
	rows := make([][]string, 0, len(cpus))
	for _, c := range cpus {
		rows = append(rows, []string{c.Model, strconv.FormatFloat(c.Mhz, 'f', -1, 64)})
	}
	h.out.Table([]string{"Model", "Clock Rate"}, rows)
	return nil
}

func (h *Handler) printHomeDir(context.Context) error {
	dir, err := h.host.HomeDir()
	if err != nil {
		return err
	}
	h.out.Println(dir)
	return nil
}

func (h *Handler) printUsername(context.Context) error {
	name, err := h.host.Username()
	if err != nil {
		return err
	}
	h.out.Println(name)
	return nil
}

func (h *Handler) printArchitecture(context.Context) error {
	h.out.Println(h.host.Architecture())
	return nil
}
