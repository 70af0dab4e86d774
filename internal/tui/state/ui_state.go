package state

import "github.com/thenoetrevino/tablero/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode    Mode = iota // Default navigation mode
	SearchMode                // Vim-style search mode (/)
	AddWidgetMode             // Add widget dialog with huh form
	ManageMode                // Manage widgets panel
	DetailMode                // Widget detail overlay
	HelpMode                  // Displaying help screen
)

// String returns a short name for the mode
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case SearchMode:
		return "search"
	case AddWidgetMode:
		return "add-widget"
	case ManageMode:
		return "manage"
	case DetailMode:
		return "detail"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes navigation (category/widget selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedCategory is the index of the selected category among the visible ones
	selectedCategory int

	// selectedWidget is the cursor row inside the selected category.
	// A value equal to the widget count points at the add placeholder.
	selectedWidget int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible category
	viewportOffset int

	// viewportSize is the number of categories that fit on the screen
	viewportSize int

	// widgetScrollOffsets tracks the vertical scroll offset for each category
	// Key: categoryID, Value: scroll offset (index of first visible widget)
	widgetScrollOffsets map[types.CategoryID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:                NormalMode,
		viewportSize:        1, // Default to 1, will be recalculated when width is set
		widgetScrollOffsets: make(map[types.CategoryID]int),
	}
}

// SelectedCategory returns the index of the currently selected category.
func (s *UIState) SelectedCategory() int {
	return s.selectedCategory
}

// SetSelectedCategory updates the selected category index.
func (s *UIState) SetSelectedCategory(index int) {
	s.selectedCategory = index
}

// SelectedWidget returns the cursor row in the selected category.
func (s *UIState) SelectedWidget() int {
	return s.selectedWidget
}

// SetSelectedWidget updates the cursor row in the selected category.
func (s *UIState) SetSelectedWidget(index int) {
	s.selectedWidget = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the category columns.
// This is terminal height minus header and status bar, ensuring a minimum of 8.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // title + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 8)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible category.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of categories that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many categories can fit in the terminal width.
//
// Category layout:
//   - Content width: 40 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between categories)
//   - Total per category: 46 characters
//
// The calculation reserves 4 characters for margins and scroll indicators,
// and ensures at least 1 category is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const categoryWidth = 46 // 40 content + 2 padding + 2 border + 2 spacing
	const reservedWidth = 4  // margins and scroll indicators

	availableWidth := s.width - reservedWidth
	s.viewportSize = max(1, availableWidth/categoryWidth)
}

// ScrollViewportLeft scrolls the viewport one category to the left.
// Returns true if scrolling occurred, false if already at leftmost position.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset > 0 {
		s.viewportOffset--
		return true
	}
	return false
}

// ScrollViewportRight scrolls the viewport one category to the right.
// Returns true if scrolling occurred, false if already at rightmost position.
func (s *UIState) ScrollViewportRight(categoriesLen int) bool {
	if s.viewportOffset+s.viewportSize < categoriesLen {
		s.viewportOffset++
		return true
	}
	return false
}

// EnsureSelectionVisible adjusts the viewport to ensure the selected category is visible.
// This should be called after navigation or when the selection changes.
func (s *UIState) EnsureSelectionVisible(selectedCategory int) {
	if selectedCategory < s.viewportOffset {
		s.viewportOffset = selectedCategory
	}
	if selectedCategory >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedCategory - s.viewportSize + 1
	}
}

// ClampSelection keeps the cursor inside the current board.
// rowsInCategory is the widget count of the selected category plus one for the placeholder.
func (s *UIState) ClampSelection(categoriesLen int, rowsInCategory func(idx int) int) {
	if categoriesLen == 0 {
		s.selectedCategory = 0
		s.selectedWidget = 0
		s.viewportOffset = 0
		return
	}

	s.selectedCategory = min(max(s.selectedCategory, 0), categoriesLen-1)
	rows := rowsInCategory(s.selectedCategory)
	s.selectedWidget = min(max(s.selectedWidget, 0), max(rows-1, 0))

	if s.viewportOffset+s.viewportSize > categoriesLen {
		s.viewportOffset = max(0, categoriesLen-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedCategory)
}

// ResetSelection resets both category and widget selection to zero.
// This is typically called when the search query changes.
func (s *UIState) ResetSelection() {
	s.selectedCategory = 0
	s.selectedWidget = 0
	s.viewportOffset = 0
}

// WidgetScrollOffset returns the vertical scroll offset for a given category.
// Returns 0 if the category has no scroll offset set.
func (s *UIState) WidgetScrollOffset(categoryID types.CategoryID) int {
	return s.widgetScrollOffsets[categoryID]
}

// SetWidgetScrollOffset updates the vertical scroll offset for a given category.
func (s *UIState) SetWidgetScrollOffset(categoryID types.CategoryID, offset int) {
	s.widgetScrollOffsets[categoryID] = max(0, offset)
}

// EnsureWidgetVisible adjusts the scroll offset to ensure the selected widget is visible.
// This should be called after widget navigation within a category.
func (s *UIState) EnsureWidgetVisible(categoryID types.CategoryID, selectedIdx int, visibleCount int) {
	offset := s.WidgetScrollOffset(categoryID)

	if selectedIdx < offset {
		s.widgetScrollOffsets[categoryID] = selectedIdx
	}
	if selectedIdx >= offset+visibleCount {
		s.widgetScrollOffsets[categoryID] = selectedIdx - visibleCount + 1
	}
}
