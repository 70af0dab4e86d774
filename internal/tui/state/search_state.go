package state

import "unicode/utf8"

// maxQueryLength bounds the search query in runes
const maxQueryLength = 100

// SearchState manages the vim-style search functionality state.
// This includes the search query text and whether the filter is currently active.
type SearchState struct {
	// Query is the current search text, used as typed (not trimmed)
	Query string

	// IsActive indicates whether the search filter is applied after leaving search mode
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// AppendChar appends a character to the search query.
// Returns true if the character was added, false if query is at max length.
func (s *SearchState) AppendChar(c rune) bool {
	if utf8.RuneCountInString(s.Query) >= maxQueryLength {
		return false
	}
	s.Query += string(c)
	return true
}

// AppendText appends every rune of text, stopping at max length.
// Returns true if anything was added.
func (s *SearchState) AppendText(text string) bool {
	added := false
	for _, r := range text {
		if !s.AppendChar(r) {
			break
		}
		added = true
	}
	return added
}

// Backspace removes the last character from the search query.
// Returns true if a character was removed, false if query was already empty.
func (s *SearchState) Backspace() bool {
	if s.Query == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]
	return true
}

// Clear resets the search query to empty string.
func (s *SearchState) Clear() {
	s.Query = ""
}

// Activate sets the filter as active.
// This is called when the user presses Enter in search mode.
func (s *SearchState) Activate() {
	s.IsActive = true
}

// Deactivate clears the filter.
// This is called when the user presses ESC in search mode.
func (s *SearchState) Deactivate() {
	s.IsActive = false
}
