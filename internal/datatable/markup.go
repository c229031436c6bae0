package datatable

import (
	"github.com/google/uuid"

	"tablesel/internal/dom"
	"tablesel/internal/domain"
)

// Render builds the element tree for a table. Rows without an id get a
// random one, which stays stable for as long as the row element exists.
// When selectable is false no checkboxes are rendered at all.
func Render(columns []string, rows []domain.Row, selectable bool) *dom.Element {
	headerRow := dom.New("tr", ClassHeaderRow)
	if selectable {
		headerRow.Append(dom.New("th", ClassHeaderCell, ClassCheckboxCell).
			Append(dom.New(dom.TagInput, ClassHeaderRowCheckbox)))
	}
	for _, col := range columns {
		th := dom.New("th", ClassHeaderCell)
		th.SetText(col)
		headerRow.Append(th)
	}

	content := dom.New("tbody", ClassContent)
	for _, row := range rows {
		content.Append(RenderRow(row, selectable))
	}

	return dom.New("div", ClassRoot).Append(
		dom.New("table").Append(
			dom.New("thead").Append(headerRow),
			content,
		),
	)
}

// RenderRow builds one row element. Append it under the table's content
// element and call Layout to make it selectable.
func RenderRow(row domain.Row, selectable bool) *dom.Element {
	id := row.ID
	if id == "" {
		id = uuid.NewString()
	}

	tr := dom.New("tr", ClassRow)
	tr.SetAttr(AttrRowID, id)

	if selectable {
		input := dom.New(dom.TagInput, ClassRowCheckbox)
		input.SetChecked(row.Selected)
		tr.Append(dom.New("td", ClassCell, ClassCheckboxCell).Append(input))
		if row.Selected {
			tr.AddClass(ClassRowSelected)
			tr.SetAttr(AttrAriaSelected, "true")
		} else {
			tr.SetAttr(AttrAriaSelected, "false")
		}
	}

	for _, text := range row.Cells {
		td := dom.New("td", ClassCell)
		td.SetText(text)
		tr.Append(td)
	}
	return tr
}
