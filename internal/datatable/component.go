package datatable

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"tablesel/internal/checkbox"
	"tablesel/internal/dom"
	"tablesel/internal/domain"
	"tablesel/internal/eventbus"
)

// DataTable hosts a Foundation over an element tree. It owns the tree, the
// checkbox sub-widgets and the change listener; selection logic lives in the
// Foundation only.
type DataTable struct {
	root       *dom.Element
	foundation *Foundation
	bus        eventbus.EventBus
	factory    CheckboxFactory

	headerCheckbox CheckboxHandle
	rowCheckboxes  map[*dom.Element]CheckboxHandle // keyed by input element

	removeChangeListener func()
	destroyed            bool
}

// DefaultCheckboxFactory creates the standard checkbox widget
func DefaultCheckboxFactory(el *dom.Element) CheckboxHandle {
	return checkbox.New(el)
}

// New attaches a data table to root. A nil factory uses
// DefaultCheckboxFactory and a nil bus creates a private one.
func New(root *dom.Element, factory CheckboxFactory, bus eventbus.EventBus) *DataTable {
	if factory == nil {
		factory = DefaultCheckboxFactory
	}
	if bus == nil {
		bus = eventbus.New()
	}

	t := &DataTable{
		root:    root,
		bus:     bus,
		factory: factory,
	}
	t.foundation = NewFoundation(&tableAdapter{t: t})
	t.removeChangeListener = root.AddEventListener(dom.EventChange, t.handleChange)
	t.foundation.Layout()

	return t
}

// handleChange routes checkbox changes bubbling up to the root
func (t *DataTable) handleChange(ev dom.Event) {
	if ev.Target == nil {
		return
	}
	switch {
	case ev.Target.HasClass(ClassHeaderRowCheckbox):
		t.foundation.HandleHeaderRowCheckboxChange()
	case ev.Target.HasClass(ClassRowCheckbox):
		t.foundation.HandleRowCheckboxChange(ChangeEvent{Target: ev.Target})
	}
}

// Root returns the table's root element
func (t *DataTable) Root() *dom.Element { return t.root }

// Layout re-derives selection state from the element tree and rebuilds
// every checkbox widget. Call it after rows were added or removed.
func (t *DataTable) Layout() { t.foundation.Layout() }

// GetRows returns the row elements in display order
func (t *DataTable) GetRows() []*dom.Element { return t.foundation.GetRows() }

// GetRowCount returns the number of rows
func (t *DataTable) GetRowCount() int { return t.foundation.GetRowCount() }

// GetSelectedRowCount returns the number of selected rows
func (t *DataTable) GetSelectedRowCount() int { return t.foundation.GetSelectedRowCount() }

// GetSelectedRowIDs returns the ids of selected rows in row order
func (t *DataTable) GetSelectedRowIDs() []string { return t.foundation.GetSelectedRowIDs() }

// SetSelectedRowIDs selects exactly the rows with the given ids
func (t *DataTable) SetSelectedRowIDs(ids []string) { t.foundation.SetSelectedRowIDs(ids) }

// HeaderTriState returns the select-all checkbox state
func (t *DataTable) HeaderTriState() domain.TriState { return t.foundation.HeaderTriState() }

// Listen subscribes to a selection event. The returned function unsubscribes.
func (t *DataTable) Listen(eventType domain.EventType, handler eventbus.EventHandler) func() {
	return t.bus.Subscribe(eventType, handler)
}

// Destroy removes the change listener and destroys every checkbox widget
func (t *DataTable) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.removeChangeListener()
	t.destroyHeaderCheckbox()
	t.destroyRowCheckboxes()
}

func (t *DataTable) destroyHeaderCheckbox() {
	if t.headerCheckbox != nil {
		t.headerCheckbox.Destroy()
		t.headerCheckbox = nil
	}
}

func (t *DataTable) destroyRowCheckboxes() {
	for _, cb := range t.rowCheckboxes {
		cb.Destroy()
	}
	t.rowCheckboxes = nil
}

func (t *DataTable) rows() []*dom.Element {
	return t.root.QueryAll(ClassRow)
}

// tableAdapter implements Adapter over the DataTable's element tree
type tableAdapter struct {
	t *DataTable
}

func (a *tableAdapter) IsHeaderRowCheckboxChecked() bool {
	if a.t.headerCheckbox == nil {
		return false
	}
	return a.t.headerCheckbox.Checked()
}

func (a *tableAdapter) SetHeaderRowCheckboxChecked(checked bool) {
	if a.t.headerCheckbox != nil {
		a.t.headerCheckbox.SetChecked(checked)
	}
}

func (a *tableAdapter) SetHeaderRowCheckboxIndeterminate(indeterminate bool) {
	if a.t.headerCheckbox != nil {
		a.t.headerCheckbox.SetIndeterminate(indeterminate)
	}
}

func (a *tableAdapter) RegisterHeaderRowCheckbox() {
	a.t.destroyHeaderCheckbox()

	el := a.t.root.Query(ClassHeaderRowCheckbox)
	if el == nil {
		// Tables may have selectable rows without a select-all control
		return
	}
	a.t.headerCheckbox = a.t.factory(el)
}

func (a *tableAdapter) RegisterRowCheckboxes() {
	a.t.destroyRowCheckboxes()

	rows := a.t.rows()
	handles := make(map[*dom.Element]CheckboxHandle, len(rows))
	for i := range rows {
		el := a.rowCheckboxInput(i)
		handles[el] = a.t.factory(el)
	}
	a.t.rowCheckboxes = handles

	log.Debug().Int("count", len(handles)).Msg("Registered row checkboxes")
}

// rowCheckboxInput returns the checkbox input of the row currently at index
func (a *tableAdapter) rowCheckboxInput(index int) *dom.Element {
	el := a.t.rows()[index].Query(ClassRowCheckbox)
	if el == nil {
		panic(fmt.Sprintf("datatable: row %d has no %s element", index, ClassRowCheckbox))
	}
	return el
}

// Rows added since the last Layout have no widget yet; their input element
// is used directly until the next registration.
func (a *tableAdapter) SetRowCheckboxCheckedAtIndex(index int, checked bool) {
	el := a.rowCheckboxInput(index)
	if h, ok := a.t.rowCheckboxes[el]; ok {
		h.SetChecked(checked)
		return
	}
	el.SetChecked(checked)
}

func (a *tableAdapter) IsCheckboxAtRowIndexChecked(index int) bool {
	el := a.rowCheckboxInput(index)
	if h, ok := a.t.rowCheckboxes[el]; ok {
		return h.Checked()
	}
	return el.Checked()
}

func (a *tableAdapter) GetSelectedRowCount() int {
	return len(a.t.root.QueryAll(ClassRowSelected))
}

func (a *tableAdapter) GetRowElements() []*dom.Element {
	return a.t.rows()
}

func (a *tableAdapter) GetRowCount() int {
	return len(a.t.rows())
}

func (a *tableAdapter) GetRowIDAtIndex(index int) string {
	id, _ := a.t.rows()[index].Attr(AttrRowID)
	return id
}

func (a *tableAdapter) GetRowIndexByChildElement(el *dom.Element) (int, bool) {
	if el == nil {
		return -1, false
	}
	row := el.Closest(ClassRow)
	if row == nil {
		return -1, false
	}
	index := slices.Index(a.t.rows(), row)
	return index, index >= 0
}

func (a *tableAdapter) GetAttributeAtRowIndex(index int, name string) (string, bool) {
	return a.t.rows()[index].Attr(name)
}

func (a *tableAdapter) SetAttributeAtRowIndex(index int, name, value string) {
	a.t.rows()[index].SetAttr(name, value)
}

func (a *tableAdapter) AddClassAtRowIndex(index int, class string) {
	a.t.rows()[index].AddClass(class)
}

func (a *tableAdapter) RemoveClassAtRowIndex(index int, class string) {
	a.t.rows()[index].RemoveClass(class)
}

func (a *tableAdapter) IsRowsSelectable() bool {
	return a.t.root.Query(ClassRowCheckbox) != nil || a.t.root.Query(ClassHeaderRowCheckbox) != nil
}

func (a *tableAdapter) NotifyRowSelectionChanged(detail domain.RowSelectionDetail) {
	log.Debug().
		Int("row_index", detail.RowIndex).
		Str("row_id", detail.RowID).
		Bool("selected", detail.Selected).
		Msg("Row selection changed")
	a.t.bus.Publish(domain.RowSelectionChangedEvent{Detail: detail})
}

func (a *tableAdapter) NotifySelectedAll() {
	a.t.bus.Publish(domain.SelectedAllEvent{})
}

func (a *tableAdapter) NotifyUnselectedAll() {
	a.t.bus.Publish(domain.UnselectedAllEvent{})
}
