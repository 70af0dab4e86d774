package state

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/types"
)

// WidgetDraft holds the values typed into the add widget form
type WidgetDraft struct {
	Name string
	Text string
}

// AddWidgetState manages the add widget dialog.
// The huh form writes through pointers into Draft and Confirm.
type AddWidgetState struct {
	// Form is the active huh form, nil while the dialog is closed
	Form *huh.Form

	// Draft is the widget being composed
	Draft WidgetDraft

	// Confirm is bound to the form's submit question
	Confirm bool

	// categoryID is the category the widget will be added to
	categoryID types.CategoryID

	open bool
}

// NewAddWidgetState creates a closed AddWidgetState.
func NewAddWidgetState() *AddWidgetState {
	return &AddWidgetState{}
}

// Open starts a fresh draft targeting categoryID.
func (s *AddWidgetState) Open(categoryID types.CategoryID) {
	s.Draft = WidgetDraft{}
	s.Confirm = true
	s.categoryID = categoryID
	s.open = true
}

// Close discards the draft and forgets the target category.
func (s *AddWidgetState) Close() {
	s.Form = nil
	s.Draft = WidgetDraft{}
	s.Confirm = false
	s.categoryID = ""
	s.open = false
}

// IsOpen reports whether the dialog is showing.
func (s *AddWidgetState) IsOpen() bool {
	return s.open
}

// CategoryID returns the category selected for the new widget.
func (s *AddWidgetState) CategoryID() types.CategoryID {
	return s.categoryID
}

// CanSubmit reports whether the draft has a non-blank name.
func (s *AddWidgetState) CanSubmit() bool {
	return strings.TrimSpace(s.Draft.Name) != ""
}
