package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockMarkdownRenderer is a mock implementation of MarkdownRenderer
type MockMarkdownRenderer struct {
	out string
	err error
}

func (m *MockMarkdownRenderer) Render(in string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.out, nil
}

func TestConsole_Messages(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Welcome("Alice")
	c.Location("/home/alice")
	c.InvalidInput()
	c.OperationFailed()
	c.Farewell("Alice")

	expected := "Welcome to the File Manager, Alice!\n" +
		"You are currently in /home/alice\n" +
		"Invalid input\n" +
		"Operation failed\n" +
		"Thank you for using File Manager, Alice, goodbye!\n"
	assert.Equal(t, expected, buf.String())
}

func TestConsole_NoColorEmitsNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Output("content")
	c.Highlight("digest")

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Equal(t, "content\ndigest\n", buf.String())
}

func TestConsole_Table(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Table([]string{"Name", "Type"}, [][]string{{"a", "directory"}, {"a.txt", "file"}})

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Type")
	assert.Contains(t, out, "directory")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("directory")), bytes.Index(buf.Bytes(), []byte("a.txt")))
}

func TestConsole_Markdown(t *testing.T) {
	tests := []struct {
		name     string
		renderer MarkdownRenderer
		expected string
	}{
		{"no renderer", nil, "# Help\n"},
		{"rendered", &MockMarkdownRenderer{out: "HELP\n\n"}, "HELP\n"},
		{"render error falls back", &MockMarkdownRenderer{err: errors.New("boom")}, "# Help\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewConsole(&buf, false)
			c.SetMarkdownRenderer(tt.renderer)

			c.Markdown("# Help\n")

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestNewMarkdownRenderer_Plain(t *testing.T) {
	r, err := NewMarkdownRenderer(false, 80)
	require.NoError(t, err)

	out, err := r.Render("# Commands\n\n- `ls` lists entries\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Commands")
	assert.Contains(t, out, "ls")
}

func TestConsole_OutputKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Output("a\tb\nlonger line\n")

	assert.Equal(t, "a\tb\nlonger line\n\n", buf.String())
}
