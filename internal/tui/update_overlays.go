package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// handleDetailMode closes the widget detail overlay
func (m Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", m.Config.KeyMappings.Quit:
		m.DetailState.Clear()
		m.UIState.SetMode(state.NormalMode)
	case m.Config.KeyMappings.RemoveWidget:
		m.DetailState.Clear()
		m.UIState.SetMode(state.NormalMode)
		return m.handleRemoveWidget()
	}
	return m, nil
}

// handleHelpMode closes the help screen on any key
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.UIState.SetMode(state.NormalMode)
	return m, nil
}
