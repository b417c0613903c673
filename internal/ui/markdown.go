package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for the terminal.
type MarkdownRenderer interface {
	Render(in string) (string, error)
}

// NewMarkdownRenderer creates a glamour renderer. With color disabled it uses
// the plain ASCII style.
func NewMarkdownRenderer(color bool, width int) (MarkdownRenderer, error) {
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("ascii")
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
}

// RenderMarkdown renders md with renderer, falling back to the raw text.
func RenderMarkdown(md string, renderer MarkdownRenderer) string {
	if renderer == nil {
		return strings.TrimRight(md, "\n")
	}
	out, err := renderer.Render(md)
	if err != nil {
		return strings.TrimRight(md, "\n")
	}
	return strings.TrimRight(out, "\n")
}
