package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tablesel/internal/datatable"
	"tablesel/internal/ui/input"
)

// helpSections names the groups returned by KeyMap.FullHelp, in order
var helpSections = []string{"Navigation", "Selection", "Other"}

// HelpRenderer handles help and selection report rendering for the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// RenderHelp lists every binding of keys grouped by section
func (r *HelpRenderer) RenderHelp(keys input.KeyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("tablesel Help"))
	help.WriteString("\n")

	for i, group := range keys.FullHelp() {
		name := "More"
		if i < len(helpSections) {
			name = helpSections[i]
		}
		help.WriteString(r.section.Render(name))
		help.WriteString("\n")

		width := 0
		for _, b := range group {
			if w := lipgloss.Width(b.Help().Key); w > width {
				width = w
			}
		}
		for _, b := range group {
			help.WriteString(r.binding(b, width))
		}
		help.WriteString("\n")
	}

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  The header checkbox selects every row, or clears them when all are selected."))
	help.WriteString("\n")

	return help.String()
}

func (r *HelpRenderer) binding(b key.Binding, width int) string {
	h := b.Help()
	pad := strings.Repeat(" ", width-lipgloss.Width(h.Key))
	return fmt.Sprintf("  %s%s  %s\n", r.key.Render(h.Key), pad, r.desc.Render(h.Desc))
}

// RenderSelection lists the ids of the selected rows in row order
func (r *HelpRenderer) RenderSelection(table *datatable.DataTable) string {
	ids := table.GetSelectedRowIDs()

	var out strings.Builder
	out.WriteString(r.title.Render(fmt.Sprintf("Selected rows (%d of %d)", len(ids), table.GetRowCount())))
	out.WriteString("\n")

	if len(ids) == 0 {
		out.WriteString(r.desc.Render("  Nothing selected"))
		out.WriteString("\n")
		return out.String()
	}

	for _, id := range ids {
		out.WriteString("  ")
		out.WriteString(r.key.Render(id))
		out.WriteString("\n")
	}
	return out.String()
}
