package datatable

import (
	"slices"

	"github.com/rs/zerolog/log"

	"tablesel/internal/dom"
	"tablesel/internal/domain"
)

// Foundation holds the selection logic of a data table. It keeps no element
// references: every fact is read through the Adapter, so its state can be
// rebuilt at any time by calling Layout.
type Foundation struct {
	adapter Adapter
}

// NewFoundation creates a foundation driving the given adapter
func NewFoundation(adapter Adapter) *Foundation {
	return &Foundation{adapter: adapter}
}

// Layout re-registers every checkbox and re-derives row and header state
// from the current elements. It never notifies listeners.
func (f *Foundation) Layout() {
	if !f.adapter.IsRowsSelectable() {
		return
	}

	f.adapter.RegisterHeaderRowCheckbox()
	f.adapter.RegisterRowCheckboxes()

	for i := 0; i < f.adapter.GetRowCount(); i++ {
		f.selectRowAtIndex(i, f.adapter.IsCheckboxAtRowIndexChecked(i))
	}
	f.setHeaderRowCheckboxState()

	log.Debug().
		Int("rows", f.adapter.GetRowCount()).
		Int("selected", f.adapter.GetSelectedRowCount()).
		Msg("Data table laid out")
}

// GetRows returns the row elements in display order
func (f *Foundation) GetRows() []*dom.Element {
	return f.adapter.GetRowElements()
}

// GetRowCount returns the number of rows
func (f *Foundation) GetRowCount() int {
	return f.adapter.GetRowCount()
}

// GetSelectedRowCount returns the number of selected rows
func (f *Foundation) GetSelectedRowCount() int {
	return f.adapter.GetSelectedRowCount()
}

// GetSelectedRowIDs returns the ids of selected rows in row order
func (f *Foundation) GetSelectedRowIDs() []string {
	ids := []string{}
	if !f.adapter.IsRowsSelectable() {
		return ids
	}
	for i := 0; i < f.adapter.GetRowCount(); i++ {
		if f.adapter.IsCheckboxAtRowIndexChecked(i) {
			ids = append(ids, f.adapter.GetRowIDAtIndex(i))
		}
	}
	return ids
}

// SetSelectedRowIDs selects exactly the rows whose id is in ids. Unknown ids
// are ignored. This is a state sync, so no selection events are emitted.
func (f *Foundation) SetSelectedRowIDs(ids []string) {
	if !f.adapter.IsRowsSelectable() {
		return
	}
	for i := 0; i < f.adapter.GetRowCount(); i++ {
		selected := slices.Contains(ids, f.adapter.GetRowIDAtIndex(i))
		f.adapter.SetRowCheckboxCheckedAtIndex(i, selected)
		f.selectRowAtIndex(i, selected)
	}
	f.setHeaderRowCheckboxState()
}

// HeaderTriState computes the select-all state from the current rows
func (f *Foundation) HeaderTriState() domain.TriState {
	return domain.ComputeTriState(f.adapter.GetSelectedRowCount(), f.adapter.GetRowCount())
}

// HandleHeaderRowCheckboxChange applies the header checkbox's new value to every row
func (f *Foundation) HandleHeaderRowCheckboxChange() {
	if !f.adapter.IsRowsSelectable() {
		return
	}
	checked := f.adapter.IsHeaderRowCheckboxChecked()

	for i := 0; i < f.adapter.GetRowCount(); i++ {
		f.adapter.SetRowCheckboxCheckedAtIndex(i, checked)
		f.selectRowAtIndex(i, checked)
	}
	f.setHeaderRowCheckboxState()

	if checked {
		f.adapter.NotifySelectedAll()
	} else {
		f.adapter.NotifyUnselectedAll()
	}
}

// HandleRowCheckboxChange syncs the row owning the event target with its
// checkbox. Targets outside any row are ignored.
func (f *Foundation) HandleRowCheckboxChange(event ChangeEvent) {
	if !f.adapter.IsRowsSelectable() {
		return
	}
	index, ok := f.adapter.GetRowIndexByChildElement(event.Target)
	if !ok {
		return
	}

	selected := f.adapter.IsCheckboxAtRowIndexChecked(index)
	f.selectRowAtIndex(index, selected)
	f.setHeaderRowCheckboxState()

	f.adapter.NotifyRowSelectionChanged(domain.RowSelectionDetail{
		RowIndex: index,
		RowID:    f.adapter.GetRowIDAtIndex(index),
		Selected: selected,
	})
}

// setHeaderRowCheckboxState applies the tri-state computed from row counts
func (f *Foundation) setHeaderRowCheckboxState() {
	switch f.HeaderTriState() {
	case domain.TriStateChecked:
		f.adapter.SetHeaderRowCheckboxChecked(true)
		f.adapter.SetHeaderRowCheckboxIndeterminate(false)
	case domain.TriStateIndeterminate:
		f.adapter.SetHeaderRowCheckboxChecked(false)
		f.adapter.SetHeaderRowCheckboxIndeterminate(true)
	default:
		f.adapter.SetHeaderRowCheckboxChecked(false)
		f.adapter.SetHeaderRowCheckboxIndeterminate(false)
	}
}

// selectRowAtIndex marks a row's element as selected or not
func (f *Foundation) selectRowAtIndex(index int, selected bool) {
	if selected {
		f.adapter.AddClassAtRowIndex(index, ClassRowSelected)
		f.adapter.SetAttributeAtRowIndex(index, AttrAriaSelected, "true")
	} else {
		f.adapter.RemoveClassAtRowIndex(index, ClassRowSelected)
		f.adapter.SetAttributeAtRowIndex(index, AttrAriaSelected, "false")
	}
}
