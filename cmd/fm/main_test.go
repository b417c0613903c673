package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cyclone1070/fm/internal/command"
	"github.com/Cyclone1070/fm/internal/config"
	"github.com/Cyclone1070/fm/internal/testing/testhelpers"
	"github.com/Cyclone1070/fm/internal/tool/sysinfo"
	"github.com/Cyclone1070/fm/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHandlers_Order(t *testing.T) {
	cfg := config.DefaultConfig()
	handlers, err := createHandlers(cfg, ui.NewConsole(&bytes.Buffer{}, false), sysinfo.NewOSHostInfo())
	require.NoError(t, err)

	var names []string
	for _, h := range handlers {
		names = append(names, h.Name())
	}
	assert.Equal(t, []string{"filesystem", "digest", "compression", "sysinfo"}, names)
}

func TestCreateHandlers_NoOverlappingCommands(t *testing.T) {
	handlers, err := createHandlers(config.DefaultConfig(), ui.NewConsole(&bytes.Buffer{}, false), sysinfo.NewOSHostInfo())
	require.NoError(t, err)

	seen := make(map[string]string)
	for _, h := range handlers {
		for _, name := range h.Commands() {
			prev, dup := seen[name]
			assert.False(t, dup, "%s claimed by %s and %s", name, prev, h.Name())
			seen[name] = h.Name()
		}
	}
}

func TestCreateHandlers_UnknownAlgorithm(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Digest.Algorithm = "md5"

	_, err := createHandlers(cfg, ui.NewConsole(&bytes.Buffer{}, false), sysinfo.NewOSHostInfo())

	assert.Error(t, err)
}

func TestRun_EndToEnd(t *testing.T) {
	home := testhelpers.CreateTestWorkspace(t, map[string]string{
		"a.txt":   "abc",
		"backup/": "",
	})

	cfg := config.DefaultConfig()
	cfg.UI.Color = false
	var out bytes.Buffer
	console := ui.NewConsole(&out, false)
	host := sysinfo.NewOSHostInfo()
	handlers, err := createHandlers(cfg, console, host)
	require.NoError(t, err)

	input := strings.Join([]string{
		"hash a.txt",
		"compress a.txt a.txt.br",
		"decompress a.txt.br backup/restored.txt",
		"cp a.txt backup",
		"os --architecture",
		"frobnicate",
		".exit",
	}, "\n")

	err = run(context.Background(), Dependencies{
		Config:   cfg,
		Options:  &config.Options{Username: "Alice"},
		Console:  console,
		Host:     host,
		Input:    strings.NewReader(input),
		HomeDir:  home,
		Handlers: handlers,
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Welcome to the File Manager, Alice!")
	assert.Contains(t, text, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	assert.Contains(t, text, "Invalid input")
	assert.NotContains(t, text, "Operation failed")
	assert.Contains(t, text, "Thank you for using File Manager, Alice, goodbye!")

	assert.Equal(t, "abc", testhelpers.ReadFile(t, filepath.Join(home, "backup", "restored.txt")))
	assert.FileExists(t, filepath.Join(home, "backup", "a.txt"))
}

func TestDispatcher_UsesHandlers(t *testing.T) {
	handlers, err := createHandlers(config.DefaultConfig(), ui.NewConsole(&bytes.Buffer{}, false), sysinfo.NewOSHostInfo())
	require.NoError(t, err)
	d := command.NewDispatcher(nil, handlers...)

	assert.Len(t, d.Handlers(), 4)
}
