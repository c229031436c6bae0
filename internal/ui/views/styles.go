package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Header        lipgloss.Style
	Cell          lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Cursor        lipgloss.Style
	SelectedRow   lipgloss.Style
	Checked       lipgloss.Style
	Indeterminate lipgloss.Style
	Unchecked     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Cell: lipgloss.NewStyle(),
		Dim:  lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:        lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SelectedRow:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Checked:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Indeterminate: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Unchecked:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
