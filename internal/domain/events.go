package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRowSelectionChanged EventType = "RowSelectionChanged"
	EventSelectedAll         EventType = "SelectedAll"
	EventUnselectedAll       EventType = "UnselectedAll"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RowSelectionChangedEvent is emitted when a single row is toggled by the user
type RowSelectionChangedEvent struct {
	Detail RowSelectionDetail
}

func (e RowSelectionChangedEvent) Type() EventType { return EventRowSelectionChanged }

// SelectedAllEvent is emitted when the header checkbox selects every row
type SelectedAllEvent struct{}

func (e SelectedAllEvent) Type() EventType { return EventSelectedAll }

// UnselectedAllEvent is emitted when the header checkbox clears every row
type UnselectedAllEvent struct{}

func (e UnselectedAllEvent) Type() EventType { return EventUnselectedAll }
