package datatable

import (
	"tablesel/internal/dom"
	"tablesel/internal/domain"
)

// Adapter is everything the Foundation needs from the hosting component.
// Each method is a narrow element or widget primitive without selection logic.
//
// Index arguments must satisfy 0 <= index < GetRowCount(); other values panic.
type Adapter interface {
	// Header checkbox
	IsHeaderRowCheckboxChecked() bool
	SetHeaderRowCheckboxChecked(checked bool)
	SetHeaderRowCheckboxIndeterminate(indeterminate bool)
	RegisterHeaderRowCheckbox()

	// Row checkboxes
	RegisterRowCheckboxes()
	SetRowCheckboxCheckedAtIndex(index int, checked bool)
	IsCheckboxAtRowIndexChecked(index int) bool
	GetSelectedRowCount() int

	// Rows
	GetRowElements() []*dom.Element
	GetRowCount() int
	GetRowIDAtIndex(index int) string
	GetRowIndexByChildElement(el *dom.Element) (int, bool)
	GetAttributeAtRowIndex(index int, name string) (string, bool)
	SetAttributeAtRowIndex(index int, name, value string)
	AddClassAtRowIndex(index int, class string)
	RemoveClassAtRowIndex(index int, class string)
	IsRowsSelectable() bool

	// Notifications
	NotifyRowSelectionChanged(detail domain.RowSelectionDetail)
	NotifySelectedAll()
	NotifyUnselectedAll()
}

// CheckboxHandle is a checkbox sub-widget owned by the hosting component
type CheckboxHandle interface {
	Checked() bool
	SetChecked(checked bool)
	Indeterminate() bool
	SetIndeterminate(indeterminate bool)
	Destroy()
}

// CheckboxFactory creates a checkbox sub-widget for an input element
type CheckboxFactory func(el *dom.Element) CheckboxHandle

// ChangeEvent is a checkbox change routed to the Foundation
type ChangeEvent struct {
	Target *dom.Element
}
