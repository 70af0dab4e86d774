package tui

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleEnterSearch enters search mode and clears any previous search state.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.SearchState.Clear()
	m.SearchState.Deactivate()
	m.UIState.ResetSelection()
	m.UIState.SetMode(state.SearchMode)
	return m, nil
}

// handleSearchMode handles keyboard input in search mode.
// The board is re-derived from the query on every render.
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		return m.handleSearchConfirm()
	case "esc":
		return m.handleSearchCancel()
	case "backspace", "ctrl+h":
		if m.SearchState.Backspace() {
			return m.executeSearch()
		}
		return m, nil
	default:
		if m.SearchState.AppendText(msg.Key().Text) {
			return m.executeSearch()
		}
		return m, nil
	}
}

// handleSearchConfirm activates the filter and returns to normal mode.
// The search query persists and continues to filter the board.
func (m Model) handleSearchConfirm() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.SearchState.Query) == "" {
		m.SearchState.Deactivate()
	} else {
		m.SearchState.Activate()
	}
	m.UIState.SetMode(state.NormalMode)
	return m, nil
}

// handleSearchCancel clears the search and returns to normal mode.
// All widgets are shown again.
func (m Model) handleSearchCancel() (tea.Model, tea.Cmd) {
	m.SearchState.Clear()
	m.SearchState.Deactivate()
	m.UIState.SetMode(state.NormalMode)
	return m.executeSearch()
}

// executeSearch moves the cursor back to the first row of the new view
func (m Model) executeSearch() (tea.Model, tea.Cmd) {
	m.UIState.ResetSelection()
	m.clampSelection()
	slog.Debug("search updated", "query", m.SearchState.Query, "categories", len(m.visibleCategories()))
	return m, nil
}
