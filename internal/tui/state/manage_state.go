package state

// ManageState manages the manage widgets panel: which category tab is
// showing and where the row cursor is.
type ManageState struct {
	open   bool
	tab    int
	cursor int
}

// NewManageState creates a closed ManageState.
func NewManageState() *ManageState {
	return &ManageState{}
}

// Open shows the panel on the given tab with the cursor on the first row.
func (s *ManageState) Open(tab int) {
	s.open = true
	s.tab = max(tab, 0)
	s.cursor = 0
}

// Close hides the panel.
func (s *ManageState) Close() {
	s.open = false
	s.cursor = 0
}

// IsOpen reports whether the panel is showing.
func (s *ManageState) IsOpen() bool {
	return s.open
}

// Tab returns the index of the category tab being edited.
func (s *ManageState) Tab() int {
	return s.tab
}

// Cursor returns the current row.
func (s *ManageState) Cursor() int {
	return s.cursor
}

// NextTab moves to the next category tab, wrapping around.
func (s *ManageState) NextTab(tabCount int) {
	if tabCount == 0 {
		return
	}
	s.tab = (s.tab + 1) % tabCount
}

// PrevTab moves to the previous category tab, wrapping around.
func (s *ManageState) PrevTab(tabCount int) {
	if tabCount == 0 {
		return
	}
	s.tab = (s.tab - 1 + tabCount) % tabCount
}

// MoveCursorUp moves the cursor up one row.
// Returns false if already at the first row.
func (s *ManageState) MoveCursorUp() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// MoveCursorDown moves the cursor down one row.
// Returns false if already at the last row.
func (s *ManageState) MoveCursorDown(rowCount int) bool {
	if s.cursor >= rowCount-1 {
		return false
	}
	s.cursor++
	return true
}

// Clamp keeps tab and cursor in range after the rows changed.
func (s *ManageState) Clamp(tabCount, rowCount int) {
	s.tab = min(max(s.tab, 0), max(tabCount-1, 0))
	s.cursor = min(max(s.cursor, 0), max(rowCount-1, 0))
}
