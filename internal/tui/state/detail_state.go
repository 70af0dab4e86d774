package state

import "github.com/thenoetrevino/tablero/internal/models"

// DetailState holds the widget shown in the detail overlay.
type DetailState struct {
	Widget       models.Widget
	CategoryName string
}

// NewDetailState creates an empty DetailState.
func NewDetailState() *DetailState {
	return &DetailState{}
}

// Show records the widget to display.
func (s *DetailState) Show(w models.Widget, categoryName string) {
	s.Widget = w
	s.CategoryName = categoryName
}

// Clear forgets the displayed widget.
func (s *DetailState) Clear() {
	s.Widget = models.Widget{}
	s.CategoryName = ""
}
