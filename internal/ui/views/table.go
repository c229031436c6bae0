package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tablesel/internal/datatable"
	"tablesel/internal/dom"
)

// Glyphs are the checkbox symbols drawn for each state
type Glyphs struct {
	Checked       string
	Unchecked     string
	Indeterminate string
}

// TableRenderer draws a data table's element tree as text
type TableRenderer struct {
	styles     *Styles
	glyphs     Glyphs
	showRowIDs bool
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles, glyphs Glyphs, showRowIDs bool) *TableRenderer {
	return &TableRenderer{
		styles:     styles,
		glyphs:     glyphs,
		showRowIDs: showRowIDs,
	}
}

// TableView is the window of the table to draw
type TableView struct {
	Root   *dom.Element
	Cursor int
	Offset int
	Height int
}

// cell is one plain-text cell plus the style it is drawn with
type cell struct {
	text  string
	style *lipgloss.Style
}

// Render draws the header row and the visible body rows
func (r *TableRenderer) Render(v TableView) string {
	header := r.headerCells(v.Root.Query(datatable.ClassHeaderRow))
	rows := v.Root.QueryAll(datatable.ClassRow)

	body := make([][]cell, len(rows))
	for i, row := range rows {
		body[i] = r.rowCells(row)
	}

	widths := columnWidths(header, body)

	var lines []string
	lines = append(lines, r.joinCells(header, widths, r.styles.Header))

	if len(rows) == 0 {
		lines = append(lines, r.styles.Dim.Render("No rows"))
		return strings.Join(lines, "\n")
	}

	height := v.Height
	if height < 1 {
		height = 1
	}
	end := v.Offset + height
	if end > len(rows) {
		end = len(rows)
	}

	if v.Offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", v.Offset)))
	}

	for i := v.Offset; i < end; i++ {
		rowStyle := r.styles.Cell
		if rows[i].HasClass(datatable.ClassRowSelected) {
			rowStyle = r.styles.SelectedRow
		}
		line := r.joinCells(body[i], widths, rowStyle)
		if i == v.Cursor {
			line = r.styles.Cursor.Render(line)
		}
		lines = append(lines, line)
	}

	if below := len(rows) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func (r *TableRenderer) headerCells(headerRow *dom.Element) []cell {
	var cells []cell
	if r.showRowIDs {
		cells = append(cells, cell{text: "ID"})
	}
	if headerRow == nil {
		return cells
	}
	for _, th := range headerRow.Children() {
		if input := th.Query(datatable.ClassHeaderRowCheckbox); input != nil {
			cells = append(cells, r.checkboxCell(input))
			continue
		}
		cells = append(cells, cell{text: th.Text()})
	}
	return cells
}

func (r *TableRenderer) rowCells(row *dom.Element) []cell {
	var cells []cell
	if r.showRowIDs {
		id, _ := row.Attr(datatable.AttrRowID)
		cells = append(cells, cell{text: id, style: &r.styles.Dim})
	}
	for _, td := range row.Children() {
		if input := td.Query(datatable.ClassRowCheckbox); input != nil {
			cells = append(cells, r.checkboxCell(input))
			continue
		}
		cells = append(cells, cell{text: td.Text()})
	}
	return cells
}

func (r *TableRenderer) checkboxCell(input *dom.Element) cell {
	switch {
	case input.Indeterminate():
		return cell{text: r.glyphs.Indeterminate, style: &r.styles.Indeterminate}
	case input.Checked():
		return cell{text: r.glyphs.Checked, style: &r.styles.Checked}
	default:
		return cell{text: r.glyphs.Unchecked, style: &r.styles.Unchecked}
	}
}

// joinCells pads each cell to its column width and renders it. Cells
// without a style of their own use fallback.
func (r *TableRenderer) joinCells(cells []cell, widths []int, fallback lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		text := c.text
		if pad := widths[i] - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		style := fallback
		if c.style != nil {
			style = *c.style
		}
		parts[i] = style.Render(text)
	}
	return strings.Join(parts, "  ")
}

func columnWidths(header []cell, body [][]cell) []int {
	n := len(header)
	for _, row := range body {
		if len(row) > n {
			n = len(row)
		}
	}
	widths := make([]int, n)
	measure := func(cells []cell) {
		for i, c := range cells {
			if w := lipgloss.Width(c.text); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range body {
		measure(row)
	}
	return widths
}
