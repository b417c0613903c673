package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the console styles, bound to one renderer.
type Styles struct {
	Welcome   lipgloss.Style
	Location  lipgloss.Style
	Invalid   lipgloss.Style
	Failed    lipgloss.Style
	Output    lipgloss.Style
	Highlight lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles creates the console styles for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Welcome:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Location:  r.NewStyle().Foreground(lipgloss.Color("6")),
		Invalid:   r.NewStyle().Foreground(lipgloss.Color("3")),
		Failed:    r.NewStyle().Foreground(lipgloss.Color("1")),
		Output:    r.NewStyle().Foreground(lipgloss.Color("8")).TabWidth(lipgloss.NoTabConversion), // Gray
		Highlight: r.NewStyle().Bold(true),
		Header:    r.NewStyle().Bold(true).Padding(0, 1),
		Cell:      r.NewStyle().Padding(0, 1),
		Border:    r.NewStyle().Foreground(lipgloss.Color("241")), // Dim gray
	}
}
