package domain

// Row represents one table row as loaded from a row source
type Row struct {
	ID       string   // stable identifier, assigned at render time if empty
	Cells    []string // cell text, in column order
	Selected bool     // initial selection
}

// RowSelectionDetail is the payload of a RowSelectionChangedEvent
type RowSelectionDetail struct {
	RowIndex int    `json:"rowIndex"`
	RowID    string `json:"rowId"`
	Selected bool   `json:"selected"`
}

// TriState is the display state of the select-all checkbox
type TriState int

const (
	TriStateUnchecked TriState = iota
	TriStateIndeterminate
	TriStateChecked
)

func (s TriState) String() string {
	switch s {
	case TriStateChecked:
		return "checked"
	case TriStateIndeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

// MarshalText lets TriState print as its name in JSON output
func (s TriState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ComputeTriState derives the header state from the selected and total row counts.
// An empty table is unchecked, never indeterminate.
func ComputeTriState(selected, total int) TriState {
	switch {
	case selected == 0:
		return TriStateUnchecked
	case selected == total:
		return TriStateChecked
	default:
		return TriStateIndeterminate
	}
}
