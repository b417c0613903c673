// Package main provides the fm interactive file manager.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cyclone1070/fm/internal/command"
	"github.com/Cyclone1070/fm/internal/config"
	"github.com/Cyclone1070/fm/internal/repl"
	"github.com/Cyclone1070/fm/internal/session"
	"github.com/Cyclone1070/fm/internal/tool/compression"
	"github.com/Cyclone1070/fm/internal/tool/digest"
	"github.com/Cyclone1070/fm/internal/tool/filesystem"
	"github.com/Cyclone1070/fm/internal/tool/fsutil"
	"github.com/Cyclone1070/fm/internal/tool/hashutil"
	"github.com/Cyclone1070/fm/internal/tool/sysinfo"
	"github.com/Cyclone1070/fm/internal/ui"
)

const helpWidth = 80

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config   *config.Config
	Options  *config.Options
	Console  *ui.Console
	Logger   *slog.Logger
	Host     sysinfo.HostInfo
	Input    io.Reader
	HomeDir  string
	Handlers []command.Handler
}

// createHandlers builds the handler chain. Order is dispatch priority.
func createHandlers(cfg *config.Config, console *ui.Console, host sysinfo.HostInfo) ([]command.Handler, error) {
	osFS := fsutil.NewOSFileSystem()

	checksumManager, err := hashutil.NewChecksumManager(cfg.Digest.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest provider: %w", err)
	}

	return []command.Handler{
		filesystem.NewHandler(osFS, console, cfg),
		digest.NewHandler(osFS, checksumManager, console),
		compression.NewHandler(osFS, compression.NewCodec(cfg.Compression.Level)),
		sysinfo.NewHandler(host, console),
	}, nil
}

func createConsole(cfg *config.Config, out io.Writer) *ui.Console {
	console := ui.NewConsole(out, cfg.UI.Color)
	renderer, err := ui.NewMarkdownRenderer(cfg.UI.Color, helpWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize help renderer: %v\n", err)
		return console
	}
	console.SetMarkdownRenderer(renderer)
	return console
}

func main() {
	opts, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to parse arguments: %v\n", err)
		opts = &config.Options{Username: config.DefaultUsername}
	}

	// Load configuration (from defaults + ~/.config/fm/config.toml)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to determine home directory: %v\n", err)
		os.Exit(1)
	}

	console := createConsole(cfg, os.Stdout)
	host := sysinfo.NewOSHostInfo()
	handlers, err := createHandlers(cfg, console, host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	deps := Dependencies{
		Config:   cfg,
		Options:  opts,
		Console:  console,
		Logger:   logger,
		Host:     host,
		Input:    os.Stdin,
		HomeDir:  homeDir,
		Handlers: handlers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, deps); err != nil {
		logger.Error("input closed unexpectedly", "error", err)
	}
	// Interrupt and .exit both end with success status
}

func run(ctx context.Context, deps Dependencies) error {
	sess := session.New(deps.HomeDir)
	dispatcher := command.NewDispatcher(deps.Logger, deps.Handlers...)
	driver := repl.NewDriver(deps.Input, dispatcher, deps.Console, sess, deps.Options.Username, deps.Logger)
	return driver.Run(ctx)
}
