// Package ui renders everything the file manager prints to the operator.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	InvalidInputMessage    = "Invalid input"
	OperationFailedMessage = "Operation failed"
)

// Console writes styled lines to one output stream.
// It is safe for use by multiple goroutines.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   Styles
	markdown MarkdownRenderer
}

// NewConsole creates a console writing to out. Colors are only emitted when out
// is a terminal that supports them and color is true.
func NewConsole(out io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		out:      out,
		renderer: r,
		styles:   NewStyles(r),
	}
}

// SetMarkdownRenderer sets the renderer used by Markdown.
func (c *Console) SetMarkdownRenderer(m MarkdownRenderer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markdown = m
}

// Renderer returns the lipgloss renderer bound to the output stream.
func (c *Console) Renderer() *lipgloss.Renderer {
	return c.renderer
}

// Styles returns the console styles.
func (c *Console) Styles() Styles {
	return c.styles
}

// Println writes text unstyled, followed by a newline.
func (c *Console) Println(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, text)
}

func (c *Console) styled(style lipgloss.Style, text string) {
	c.Println(style.Render(text))
}

// Welcome greets the operator.
func (c *Console) Welcome(username string) {
	c.styled(c.styles.Welcome, fmt.Sprintf("Welcome to the File Manager, %s!", username))
}

// Farewell says goodbye to the operator.
func (c *Console) Farewell(username string) {
	c.styled(c.styles.Welcome, fmt.Sprintf("Thank you for using File Manager, %s, goodbye!", username))
}

// Location reports the session directory.
func (c *Console) Location(dir string) {
	c.styled(c.styles.Location, "You are currently in "+dir)
}

// InvalidInput reports a malformed or unknown command.
func (c *Console) InvalidInput() {
	c.styled(c.styles.Invalid, InvalidInputMessage)
}

// OperationFailed reports a failed command.
func (c *Console) OperationFailed() {
	c.styled(c.styles.Failed, OperationFailedMessage)
}

// Output writes file content. Lines are styled one by one so the content is
// neither padded nor re-flowed.
func (c *Console) Output(text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = c.styles.Output.Render(line)
	}
	c.Println(strings.Join(lines, "\n"))
}

// Highlight writes a single emphasised result such as a digest.
func (c *Console) Highlight(text string) {
	c.styled(c.styles.Highlight, text)
}

// Table writes rows under headers as a bordered table.
func (c *Console) Table(headers []string, rows [][]string) {
	c.Println(RenderTable(c.styles, headers, rows))
}

// Markdown writes md rendered for the terminal. Without a markdown renderer, or
// when rendering fails, md is written as-is.
func (c *Console) Markdown(md string) {
	c.mu.Lock()
	m := c.markdown
	c.mu.Unlock()

	c.Println(RenderMarkdown(md, m))
}
