package state

// AppState contains the UI state that is not part of the table itself.
// Selection lives on the table's elements, never here.
type AppState struct {
	Cursor         int // row under the cursor
	ViewportOffset int // first visible row
	ViewportHeight int // rows that fit on screen

	ShowHelp      bool
	StatusMessage string // last selection event, shown in the status bar
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
	}
}

// MoveCursor moves the cursor by delta rows, clamped to [0, total)
func (s *AppState) MoveCursor(delta, total int) {
	s.SetCursor(s.Cursor+delta, total)
}

// SetCursor places the cursor on index, clamped to [0, total)
func (s *AppState) SetCursor(index, total int) {
	switch {
	case total <= 0:
		index = 0
	case index < 0:
		index = 0
	case index >= total:
		index = total - 1
	}
	s.Cursor = index
	s.ensureCursorVisible()
}

// ensureCursorVisible scrolls so the cursor row is inside the viewport
func (s *AppState) ensureCursorVisible() {
	height := s.ViewportHeight
	if height < 1 {
		height = 1
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if s.Cursor >= s.ViewportOffset+height {
		s.ViewportOffset = s.Cursor - height + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// SetViewportHeight updates the viewport size and keeps the cursor visible
func (s *AppState) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.ViewportHeight = height
	s.ensureCursorVisible()
}
